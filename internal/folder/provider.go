// Package folder implements the storage collaborator over a filesystem.
package folder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/markbucks/internal/model"
	"github.com/Veraticus/markbucks/internal/service"
	"github.com/spf13/afero"
)

// Provider errors.
var (
	ErrNotFolder     = errors.New("location is not a folder")
	ErrNotWritable   = errors.New("folder is not writable")
	ErrFileExists    = service.ErrFileExists
	ErrInvalidName   = errors.New("invalid file name")
	ErrNilFileHandle = errors.New("file handle is nil")
)

var extensionsByMIME = map[string]string{
	model.MarkdownMIME: ".md",
	"text/plain":       ".txt",
}

var _ service.Folders = (*Provider)(nil)

// Provider grants access to folders and creates files inside them.
type Provider struct {
	fs afero.Fs
}

// NewProvider creates a provider backed by fs.
func NewProvider(fs afero.Fs) *Provider {
	return &Provider{fs: fs}
}

// NewOSProvider creates a provider backed by the real filesystem.
func NewOSProvider() *Provider {
	return NewProvider(afero.NewOsFs())
}

// GrantPersistentAccess checks that loc is an existing folder the process
// can create files in. Local folders need no further grant to survive a
// restart.
func (p *Provider) GrantPersistentAccess(ctx context.Context, loc model.Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir, err := p.dir(loc)
	if err != nil {
		return err
	}

	probe, err := afero.TempFile(p.fs, dir, ".markbucks-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotWritable, dir, err)
	}
	name := probe.Name()
	_ = probe.Close()
	if err := p.fs.Remove(name); err != nil {
		slog.Warn("Failed to remove access probe", "file", name, "error", err)
	}

	slog.Debug("Granted folder access", "location", loc.String())
	return nil
}

// Exists reports whether loc still refers to a folder.
func (p *Provider) Exists(_ context.Context, loc model.Location) bool {
	_, err := p.dir(loc)
	return err == nil
}

// CreateFile creates an empty file named name inside loc. The extension
// matching mimeType is appended when name lacks it.
func (p *Provider) CreateFile(ctx context.Context, loc model.Location, name, mimeType string) (*service.FileHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if ext, ok := extensionsByMIME[mimeType]; ok && !strings.HasSuffix(name, ext) {
		name += ext
	}

	dir, err := p.dir(loc)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, name)
	f, err := p.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileExists, name)
		}
		return nil, fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", name, err)
	}

	return &service.FileHandle{Location: loc, Name: name}, nil
}

// OpenForWrite opens a file previously returned by CreateFile.
func (p *Provider) OpenForWrite(ctx context.Context, handle *service.FileHandle) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, ErrNilFileHandle
	}

	dir, err := p.dir(handle.Location)
	if err != nil {
		return nil, err
	}

	f, err := p.fs.OpenFile(filepath.Join(dir, handle.Name), os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", handle.Name, err)
	}
	return f, nil
}

// dir resolves loc to a path and checks it is a folder.
func (p *Provider) dir(loc model.Location) (string, error) {
	path, err := loc.Path()
	if err != nil {
		return "", err
	}

	info, err := p.fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotFolder, path)
	}
	return path, nil
}
