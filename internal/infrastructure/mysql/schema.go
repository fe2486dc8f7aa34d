package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

const ordersTable = `
CREATE TABLE IF NOT EXISTS Orders (
	id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	reference CHAR(36) NOT NULL,
	name VARCHAR(150) NOT NULL,
	business VARCHAR(150) NOT NULL DEFAULT '',
	email VARCHAR(150) NOT NULL,
	phone VARCHAR(30) NOT NULL DEFAULT '',
	instagram VARCHAR(100) NOT NULL DEFAULT '',
	tiktok VARCHAR(100) NOT NULL DEFAULT '',
	website VARCHAR(255) NOT NULL DEFAULT '',
	color VARCHAR(100) NOT NULL,
	plan VARCHAR(100) NOT NULL,
	notes TEXT NOT NULL,
	status VARCHAR(50) NOT NULL DEFAULT 'RECEIVED',
	createdAt BIGINT NOT NULL,
	UNIQUE KEY uq_reference (reference),
	INDEX idx_email (email)
)`

// Migrate creates the tables the order store needs.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, ordersTable); err != nil {
		return fmt.Errorf("creating Orders table: %w", err)
	}
	return nil
}
