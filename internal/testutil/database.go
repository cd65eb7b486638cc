// Package testutil provides test helpers for setting up in-memory snapshot
// gateways, creating fixtures, and making assertions.
package testutil

import (
	"testing"

	"financaspro/internal/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB creates an in-memory SQLite database with the snapshot table migrated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&storage.Snapshot{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// SetupTestGateway creates a snapshot gateway over a fresh in-memory
// database, torn down when the test finishes.
func SetupTestGateway(t *testing.T) storage.SnapshotGateway {
	t.Helper()

	db := SetupTestDB(t)
	t.Cleanup(func() { TeardownTestDB(t, db) })
	return storage.NewGormGateway(db)
}
