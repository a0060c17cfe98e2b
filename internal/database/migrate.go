package database

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on startup. Statements are idempotent so
// restarting the server against an existing database is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS people (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		amount_paid DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		unit_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		quantity INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS shares (
		person_id BIGINT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		item_id BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		portions DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (person_id, item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS bill_settings (
		id SMALLINT PRIMARY KEY CHECK (id = 1),
		service_charge_percent DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`INSERT INTO bill_settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING`,
}

// Migrate bootstraps the schema
func Migrate(db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
