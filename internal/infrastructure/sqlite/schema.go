package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS Orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		reference TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		business TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		instagram TEXT NOT NULL DEFAULT '',
		tiktok TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL,
		plan TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'RECEIVED',
		createdAt INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_email ON Orders (email)`,
}

// Migrate creates the tables the order store needs.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
