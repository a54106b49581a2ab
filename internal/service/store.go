package service

import "context"

// Store is the persistence capability a service needs: one table, five
// single-statement operations. *repository.Repository satisfies it.
type Store[R any] interface {
	Insert(ctx context.Context, values ...any) (int, error)
	SelectAll(ctx context.Context) ([]R, error)
	SelectByID(ctx context.Context, id int) (*R, error)
	Update(ctx context.Context, id int, values ...any) error
	DeleteByID(ctx context.Context, id int) error
}
