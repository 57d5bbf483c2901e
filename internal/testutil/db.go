package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"gqlgate/internal/storage"
	storagesql "gqlgate/internal/storage/sql"
)

// NewTestDB creates a throwaway SQLite store in a temp directory.
func NewTestDB(t *testing.T) storage.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := storagesql.New(context.Background(), "sqlite://"+dbPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}
