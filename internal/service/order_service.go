package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/api/internal/model"
)

// ErrMalformedDate is returned when order_date is not a YYYY-MM-DD string.
// It surfaces before any storage call.
var ErrMalformedDate = errors.New("order_date must be a YYYY-MM-DD date")

const orderDateLayout = "2006-01-02"

type OrderService struct {
	store Store[model.Order]
}

func NewOrderService(store Store[model.Order]) *OrderService {
	return &OrderService{store: store}
}

func parseOrderDate(value string) (time.Time, error) {
	date, err := time.Parse(orderDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
	}
	// Midnight UTC of the given day.
	return date, nil
}

func (s *OrderService) Create(ctx context.Context, in model.OrderInput) (model.Order, error) {
	date, err := parseOrderDate(in.OrderDate)
	if err != nil {
		return model.Order{}, err
	}
	id, err := s.store.Insert(ctx, in.UserID, in.ItemID, date, in.Status)
	if err != nil {
		return model.Order{}, err
	}
	return model.Order{ID: id, UserID: in.UserID, ItemID: in.ItemID, OrderDate: date, Status: in.Status}, nil
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.store.SelectAll(ctx)
}

func (s *OrderService) Get(ctx context.Context, id int) (*model.Order, error) {
	return s.store.SelectByID(ctx, id)
}

// Replace parses order_date with the same rule as Create and echoes the
// input back with the path id without re-reading storage.
func (s *OrderService) Replace(ctx context.Context, id int, in model.OrderInput) (model.Order, error) {
	date, err := parseOrderDate(in.OrderDate)
	if err != nil {
		return model.Order{}, err
	}
	if err := s.store.Update(ctx, id, in.UserID, in.ItemID, date, in.Status); err != nil {
		return model.Order{}, err
	}
	return model.Order{ID: id, UserID: in.UserID, ItemID: in.ItemID, OrderDate: date, Status: in.Status}, nil
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	return s.store.DeleteByID(ctx, id)
}
