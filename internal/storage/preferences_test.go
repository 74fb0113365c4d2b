package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/markbucks/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceStore_GetSetDelete(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()
	prefs := store.Preferences(service.AppNamespace)

	_, ok, err := prefs.Get(ctx, service.KeyFolderURI)
	require.NoError(t, err)
	assert.False(t, ok, "key should be absent before onboarding")

	require.NoError(t, prefs.Set(ctx, service.KeyFolderURI, "file:///home/user/ledger"))
	value, ok, err := prefs.Get(ctx, service.KeyFolderURI)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "file:///home/user/ledger", value)

	// Re-running onboarding overwrites the previous folder.
	require.NoError(t, prefs.Set(ctx, service.KeyFolderURI, "file:///home/user/other"))
	value, _, err = prefs.Get(ctx, service.KeyFolderURI)
	require.NoError(t, err)
	assert.Equal(t, "file:///home/user/other", value)

	require.NoError(t, prefs.Delete(ctx, service.KeyFolderURI))
	_, ok, err = prefs.Get(ctx, service.KeyFolderURI)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is fine.
	require.NoError(t, prefs.Delete(ctx, service.KeyFolderURI))
}

func TestPreferenceStore_Namespaces(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	app := store.Preferences(service.AppNamespace)
	other := store.Preferences("other")
	assert.Equal(t, service.AppNamespace, app.Namespace())

	require.NoError(t, app.Set(ctx, service.KeyFolderURI, "file:///a"))
	require.NoError(t, other.Set(ctx, service.KeyFolderURI, "file:///b"))

	v, _, err := app.Get(ctx, service.KeyFolderURI)
	require.NoError(t, err)
	assert.Equal(t, "file:///a", v)

	v, _, err = other.Get(ctx, service.KeyFolderURI)
	require.NoError(t, err)
	assert.Equal(t, "file:///b", v)
}

func TestPreferenceStore_EmptyKey(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()
	prefs := store.Preferences(service.AppNamespace)

	_, _, err := prefs.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyString)
	assert.ErrorIs(t, prefs.Set(ctx, " ", "x"), ErrEmptyString)
	assert.ErrorIs(t, prefs.Delete(ctx, ""), ErrEmptyString)
}

func TestPreferenceStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "prefs.db")

	first, err := Open(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Preferences(service.AppNamespace).Set(ctx, service.KeyFolderURI, "file:///persisted"))
	require.NoError(t, first.Close())

	second, err := Open(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	v, ok, err := second.Preferences(service.AppNamespace).Get(ctx, service.KeyFolderURI)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "file:///persisted", v)
}
