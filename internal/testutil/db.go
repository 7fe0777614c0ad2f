package testutil

import (
	"path/filepath"
	"testing"

	"github.com/sitewise/themekit/internal/store"
)

// NewTestStore creates a temporary SQLite theme store with migrations applied.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("create test store: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}
