package storage

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		address VARCHAR(500),
		state VARCHAR(20) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		state VARCHAR(20) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS riders (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone_number VARCHAR(50) NOT NULL UNIQUE,
		vehicle_details VARCHAR(100),
		status VARCHAR(20) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id BIGSERIAL PRIMARY KEY,
		restaurant_id BIGINT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		product_name VARCHAR(255) NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		is_available BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS menu_items_restaurant_product_idx
		ON menu_items (restaurant_id, LOWER(product_name))`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		restaurant_id BIGINT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		state VARCHAR(30) NOT NULL,
		total_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// Lines are snapshots; they intentionally carry no reference to menu_items.
	`CREATE TABLE IF NOT EXISTS order_lines (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_name VARCHAR(255) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		price NUMERIC(10,2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS order_lines_order_id_idx ON order_lines (order_id)`,
}

// EnsureSchema creates any missing tables. Safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
