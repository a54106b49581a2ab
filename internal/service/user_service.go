package service

import (
	"context"

	"storefront/api/internal/model"
)

// UserService stores the password exactly as supplied. No hashing happens
// anywhere in the pipeline and the stored value is returned on reads.
type UserService struct {
	store Store[model.User]
}

func NewUserService(store Store[model.User]) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Create(ctx context.Context, in model.UserInput) (model.User, error) {
	id, err := s.store.Insert(ctx, in.FirstName, in.LastName, in.Email, in.Password)
	if err != nil {
		return model.User{}, err
	}
	return model.User{ID: id, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email, Password: in.Password}, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.store.SelectAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id int) (*model.User, error) {
	return s.store.SelectByID(ctx, id)
}

func (s *UserService) Replace(ctx context.Context, id int, in model.UserInput) (model.User, error) {
	if err := s.store.Update(ctx, id, in.FirstName, in.LastName, in.Email, in.Password); err != nil {
		return model.User{}, err
	}
	return model.User{ID: id, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email, Password: in.Password}, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.store.DeleteByID(ctx, id)
}
