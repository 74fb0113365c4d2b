package testutil

import (
	"context"
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/Veraticus/markbucks/internal/folder"
	"github.com/Veraticus/markbucks/internal/model"
	"github.com/Veraticus/markbucks/internal/service"
	"github.com/spf13/afero"
)

// LedgerDir is the folder created by SetupLedger.
const LedgerDir = "/ledger"

// LedgerLocation is the Location of LedgerDir.
const LedgerLocation = model.Location("file:///ledger")

// Catalog returns a small catalog used across tests.
func Catalog() model.Catalog {
	return model.Catalog{
		Income:  []string{"Salary", "Freelance", "Gifts"},
		Expense: []string{"Food", "Transport", "Housing"},
	}
}

// Ledger is an in-memory folder behind a real folder.Provider.
type Ledger struct {
	Fs       afero.Fs
	Provider *folder.Provider
	t        *testing.T
}

// SetupLedger creates an in-memory filesystem containing LedgerDir.
func SetupLedger(t *testing.T) *Ledger {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(LedgerDir, 0o755); err != nil {
		t.Fatalf("failed to create ledger dir: %v", err)
	}
	return &Ledger{Fs: fs, Provider: folder.NewProvider(fs), t: t}
}

// Files returns the sorted names of the files in LedgerDir.
func (l *Ledger) Files() []string {
	l.t.Helper()
	entries, err := afero.ReadDir(l.Fs, LedgerDir)
	if err != nil {
		l.t.Fatalf("failed to list ledger: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Read returns the content of a file in LedgerDir.
func (l *Ledger) Read(name string) string {
	l.t.Helper()
	data, err := afero.ReadFile(l.Fs, LedgerDir+"/"+name)
	if err != nil {
		l.t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// FaultyFolders wraps a service.Folders and injects failures.
type FaultyFolders struct {
	service.Folders
	// NilHandle makes CreateFile return no handle and no error.
	NilHandle bool
	// WriteErr is returned by writes to opened files.
	WriteErr error
	// Panic makes CreateFile panic with this value when non-nil.
	Panic any
	// GrantErr is returned by GrantPersistentAccess when set.
	GrantErr error
}

// GrantPersistentAccess implements service.Folders.
func (f *FaultyFolders) GrantPersistentAccess(ctx context.Context, loc model.Location) error {
	if f.GrantErr != nil {
		return f.GrantErr
	}
	return f.Folders.GrantPersistentAccess(ctx, loc)
}

// CreateFile implements service.Folders.
func (f *FaultyFolders) CreateFile(ctx context.Context, loc model.Location, name, mimeType string) (*service.FileHandle, error) {
	if f.Panic != nil {
		panic(f.Panic)
	}
	if f.NilHandle {
		return nil, nil
	}
	return f.Folders.CreateFile(ctx, loc, name, mimeType)
}

// OpenForWrite implements service.Folders.
func (f *FaultyFolders) OpenForWrite(ctx context.Context, handle *service.FileHandle) (io.WriteCloser, error) {
	w, err := f.Folders.OpenForWrite(ctx, handle)
	if err != nil || f.WriteErr == nil {
		return w, err
	}
	return failingWriter{closer: w, err: f.WriteErr}, nil
}

type failingWriter struct {
	closer io.Closer
	err    error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func (w failingWriter) Close() error {
	return w.closer.Close()
}

// ErrDiskFull is a convenient write error for tests.
var ErrDiskFull = errors.New("no space left on device")
