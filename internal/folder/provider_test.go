package folder

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/Veraticus/markbucks/internal/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProvider(t *testing.T) (*Provider, afero.Fs, model.Location) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/ledger", 0o755))
	return NewProvider(fs), fs, model.Location("file:///ledger")
}

func TestProvider_GrantPersistentAccess(t *testing.T) {
	p, fs, loc := setupProvider(t)
	ctx := context.Background()

	require.NoError(t, p.GrantPersistentAccess(ctx, loc))

	// The probe file must not be left behind.
	entries, err := afero.ReadDir(fs, "/ledger")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProvider_GrantPersistentAccess_Failures(t *testing.T) {
	p, fs, _ := setupProvider(t)
	ctx := context.Background()
	require.NoError(t, afero.WriteFile(fs, "/notes.txt", []byte("x"), 0o644))

	assert.Error(t, p.GrantPersistentAccess(ctx, "file:///missing"))
	assert.ErrorIs(t, p.GrantPersistentAccess(ctx, "file:///notes.txt"), ErrNotFolder)
	assert.ErrorIs(t, p.GrantPersistentAccess(ctx, "content://tree/primary"), model.ErrUnsupportedLocation)

	readOnly := NewProvider(afero.NewReadOnlyFs(fs))
	assert.ErrorIs(t, readOnly.GrantPersistentAccess(ctx, "file:///ledger"), ErrNotWritable)
}

func TestProvider_Exists(t *testing.T) {
	p, fs, loc := setupProvider(t)
	ctx := context.Background()

	assert.True(t, p.Exists(ctx, loc))
	assert.False(t, p.Exists(ctx, "file:///missing"))
	assert.False(t, p.Exists(ctx, ""))

	require.NoError(t, fs.RemoveAll("/ledger"))
	assert.False(t, p.Exists(ctx, loc))
}

func TestProvider_CreateAndWrite(t *testing.T) {
	p, fs, loc := setupProvider(t)
	ctx := context.Background()

	handle, err := p.CreateFile(ctx, loc, "transaction_2024-05-01_14-32-07.md", model.MarkdownMIME)
	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.Equal(t, "transaction_2024-05-01_14-32-07.md", handle.Name)

	w, err := p.OpenForWrite(ctx, handle)
	require.NoError(t, err)
	_, err = io.WriteString(w, "---\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := afero.ReadFile(fs, "/ledger/transaction_2024-05-01_14-32-07.md")
	require.NoError(t, err)
	assert.Equal(t, "---\n", string(data))
}

func TestProvider_CreateFile_AppendsExtension(t *testing.T) {
	p, fs, loc := setupProvider(t)

	handle, err := p.CreateFile(context.Background(), loc, "transaction_x", model.MarkdownMIME)
	require.NoError(t, err)
	assert.Equal(t, "transaction_x.md", handle.Name)

	exists, err := afero.Exists(fs, "/ledger/transaction_x.md")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProvider_CreateFile_NeverOverwrites(t *testing.T) {
	p, fs, loc := setupProvider(t)
	ctx := context.Background()
	require.NoError(t, afero.WriteFile(fs, "/ledger/taken.md", []byte("keep me"), 0o644))

	handle, err := p.CreateFile(ctx, loc, "taken.md", model.MarkdownMIME)
	assert.Nil(t, handle)
	assert.ErrorIs(t, err, ErrFileExists)

	data, err := afero.ReadFile(fs, "/ledger/taken.md")
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestProvider_CreateFile_InvalidInput(t *testing.T) {
	p, _, loc := setupProvider(t)
	ctx := context.Background()

	for _, name := range []string{"", "../escape.md", "sub/file.md"} {
		_, err := p.CreateFile(ctx, loc, name, model.MarkdownMIME)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}

	_, err := p.CreateFile(ctx, "file:///missing", "a.md", model.MarkdownMIME)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = p.OpenForWrite(ctx, nil)
	assert.ErrorIs(t, err, ErrNilFileHandle)
}

func TestProvider_CancelledContext(t *testing.T) {
	p, _, loc := setupProvider(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.CreateFile(ctx, loc, "a.md", model.MarkdownMIME)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, p.GrantPersistentAccess(ctx, loc), context.Canceled)
}
