package mocks

import (
	"testing"

	"sustainshare-api/config"

	"gorm.io/gorm"
)

// NewTestDB opens a fresh, migrated in-memory SQLite database that is closed
// when the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := config.OpenDB(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
