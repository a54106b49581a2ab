package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Orders keep plain integer user_id/item_id columns with no foreign keys:
// references are never validated and deleting a user or item leaves its
// orders in place.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id SERIAL PRIMARY KEY,
		name VARCHAR(32),
		description VARCHAR(128),
		price DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		user_id INTEGER,
		item_id INTEGER,
		order_date TIMESTAMP,
		status VARCHAR(32)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		firstname VARCHAR(32),
		lastname VARCHAR(32),
		email VARCHAR(128),
		password VARCHAR(128)
	)`,
}

// CreateSchema creates the three tables at startup if they do not exist.
func CreateSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
