package service

import (
	"context"

	"storefront/api/internal/model"
)

type ItemService struct {
	store Store[model.Item]
}

func NewItemService(store Store[model.Item]) *ItemService {
	return &ItemService{store: store}
}

func (s *ItemService) Create(ctx context.Context, in model.ItemInput) (model.Item, error) {
	id, err := s.store.Insert(ctx, in.Name, in.Description, in.Price)
	if err != nil {
		return model.Item{}, err
	}
	return model.Item{ID: id, Name: in.Name, Description: in.Description, Price: in.Price}, nil
}

func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.store.SelectAll(ctx)
}

func (s *ItemService) Get(ctx context.Context, id int) (*model.Item, error) {
	return s.store.SelectByID(ctx, id)
}

// Replace overwrites every field and echoes the input back with the path id.
// It does not re-read the row, so a missing id still returns an echoed record.
func (s *ItemService) Replace(ctx context.Context, id int, in model.ItemInput) (model.Item, error) {
	if err := s.store.Update(ctx, id, in.Name, in.Description, in.Price); err != nil {
		return model.Item{}, err
	}
	return model.Item{ID: id, Name: in.Name, Description: in.Description, Price: in.Price}, nil
}

func (s *ItemService) Delete(ctx context.Context, id int) error {
	return s.store.DeleteByID(ctx, id)
}
