// Package testutil provides shared fixtures and fakes for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/markbucks/internal/service"
	"github.com/Veraticus/markbucks/internal/storage"
)

// SetupTestStore opens an in-memory SQLite database that is closed when the
// test ends.
func SetupTestStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return store
}

// SetupTestPrefs creates an in-memory SQLite preferences store for the
// application namespace.
func SetupTestPrefs(t *testing.T) *storage.PreferenceStore {
	t.Helper()
	return SetupTestStore(t).Preferences(service.AppNamespace)
}

// ConfigureFolder stores loc as the configured folder.
func ConfigureFolder(t *testing.T, prefs *storage.PreferenceStore, loc string) {
	t.Helper()
	if err := prefs.Set(context.Background(), service.KeyFolderURI, loc); err != nil {
		t.Fatalf("failed to configure folder: %v", err)
	}
}
