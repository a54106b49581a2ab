package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/api/internal/model"
)

// Repository runs the five CRUD statements for one table. Every operation is
// a single statement; the id column is assigned by the database on insert.
type Repository[R any] struct {
	db      *pgxpool.Pool
	table   string
	columns []string // non-id columns, in insert/update order
}

func New[R any](db *pgxpool.Pool, table string, columns ...string) *Repository[R] {
	return &Repository[R]{db: db, table: table, columns: columns}
}

func NewItemRepository(db *pgxpool.Pool) *Repository[model.Item] {
	return New[model.Item](db, "items", "name", "description", "price")
}

func NewOrderRepository(db *pgxpool.Pool) *Repository[model.Order] {
	return New[model.Order](db, "orders", "user_id", "item_id", "order_date", "status")
}

func NewUserRepository(db *pgxpool.Pool) *Repository[model.User] {
	return New[model.User](db, "users", "firstname", "lastname", "email", "password")
}

// Insert adds one row and returns the assigned id. Values must match the
// repository's column order.
func (r *Repository[R]) Insert(ctx context.Context, values ...any) (int, error) {
	placeholders := make([]string, len(r.columns))
	for i := range r.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.table, strings.Join(r.columns, ", "), strings.Join(placeholders, ", "))

	var id int
	if err := r.db.QueryRow(ctx, query, values...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	return id, nil
}

// SelectAll returns every row in the table's natural retrieval order.
func (r *Repository[R]) SelectAll(ctx context.Context) ([]R, error) {
	query := fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(r.columns, ", "), r.table)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", r.table, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[R])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s rows: %w", r.table, err)
	}
	return records, nil
}

// SelectByID returns the matching row, or nil when no row has that id. A
// missing row is not an error at this layer.
func (r *Repository[R]) SelectByID(ctx context.Context, id int) (*R, error) {
	query := fmt.Sprintf("SELECT id, %s FROM %s WHERE id = $1", strings.Join(r.columns, ", "), r.table)
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", r.table, err)
	}
	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[R])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
	}
	return &record, nil
}

// Update overwrites every non-id column of the matching row. No rows-affected
// check: updating an id that does not exist is a silent no-op.
func (r *Repository[R]) Update(ctx context.Context, id int, values ...any) error {
	sets := make([]string, len(r.columns))
	for i, col := range r.columns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		r.table, strings.Join(sets, ", "), len(r.columns)+1)

	args := append(append([]any{}, values...), id)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update %s: %w", r.table, err)
	}
	return nil
}

// DeleteByID removes the matching row if present; deleting a missing id is a
// no-op.
func (r *Repository[R]) DeleteByID(ctx context.Context, id int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table)
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.table, err)
	}
	return nil
}
