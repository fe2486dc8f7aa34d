package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"tapconnect/internal/infrastructure/mysql"
	"tapconnect/internal/infrastructure/sqlite"
)

// SetupTestDB connects to a local MySQL database named 'tapconnect_test' and
// creates the schema. The test is skipped when no server is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "root:@tcp(localhost:3306)/tapconnect_test"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	if err := mysql.Migrate(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("failed to create schema: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes db.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}

	for _, table := range []string{"Orders"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupSQLiteDB returns a migrated in-memory SQLite database that is closed
// when the test ends.
func SetupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.NewConnection(sqlite.Memory)
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqlite.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return db
}
