package database

import (
	"context"
	"fmt"
)

// Migrate creates the schema if it does not exist yet. Every statement is
// idempotent so the server can run it unconditionally at startup.
//
// Collections are keyed by opaque text IDs; ID lists (fridge memberships,
// expense splits) are text arrays rather than join tables to keep the
// per-document shape of the wire contract.
func Migrate(db *DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id TEXT PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			fridge_ids TEXT[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS fridges (
			id TEXT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			owner_id TEXT NOT NULL,
			members TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS fridge_items (
			id TEXT PRIMARY KEY,
			fridge_id TEXT NOT NULL REFERENCES fridges(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			item_type VARCHAR(50) NOT NULL DEFAULT '',
			quantity VARCHAR(50) NOT NULL DEFAULT '',
			expiration_date VARCHAR(10) NOT NULL DEFAULT '',
			added_by TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			seq BIGSERIAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fridge_items_fridge_id ON fridge_items(fridge_id)`,
		`CREATE TABLE IF NOT EXISTS grocery_items (
			id TEXT PRIMARY KEY,
			fridge_id TEXT NOT NULL REFERENCES fridges(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			quantity VARCHAR(50) NOT NULL DEFAULT '',
			added_by TEXT NOT NULL,
			is_checked BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			seq BIGSERIAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_grocery_items_fridge_id ON grocery_items(fridge_id)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id TEXT PRIMARY KEY,
			item_name VARCHAR(255) NOT NULL,
			cost DOUBLE PRECISION NOT NULL,
			payer_id TEXT NOT NULL,
			user_ids TEXT[] NOT NULL DEFAULT '{}',
			fridge_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			seq BIGSERIAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_fridge_id ON expenses(fridge_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(context.Background(), stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
