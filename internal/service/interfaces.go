// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"errors"
	"io"

	"github.com/Veraticus/markbucks/internal/model"
)

// Preference namespaces and keys.
const (
	// AppNamespace holds process-wide application settings.
	AppNamespace = "app_prefs"
	// KeyFolderURI stores the chosen storage location.
	KeyFolderURI = "folder_uri"
	// ImportNamespace records statement entries that were already imported.
	ImportNamespace = "ofx_imported"
)

// ErrFileExists is returned by Folders.CreateFile when the name is taken.
var ErrFileExists = errors.New("file already exists")

// Preferences is a persisted key-value store scoped to one namespace.
type Preferences interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// FileHandle identifies a file created inside a storage location.
type FileHandle struct {
	Location model.Location
	Name     string
}

// Folders is the storage collaborator: it grants access to user-picked
// folders and creates files inside them.
type Folders interface {
	// GrantPersistentAccess makes loc usable across restarts. It fails when
	// loc is not a writable folder.
	GrantPersistentAccess(ctx context.Context, loc model.Location) error
	// Exists reports whether loc still refers to an accessible folder.
	Exists(ctx context.Context, loc model.Location) bool
	// CreateFile creates a new, empty file. It never replaces an existing
	// file; a nil handle is returned in that case together with an error.
	CreateFile(ctx context.Context, loc model.Location, name, mimeType string) (*FileHandle, error)
	// OpenForWrite opens a created file for writing.
	OpenForWrite(ctx context.Context, handle *FileHandle) (io.WriteCloser, error)
}
