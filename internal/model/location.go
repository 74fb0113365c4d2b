package model

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ErrUnsupportedLocation is returned for location references that do not
// point at a local folder.
var ErrUnsupportedLocation = errors.New("unsupported location")

// Location is an opaque reference to a writable folder, stored as a
// file:// URI.
type Location string

// LocationFromPath builds a Location for a filesystem path.
func LocationFromPath(path string) (Location, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsupportedLocation)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return Location(u.String()), nil
}

// IsZero reports whether the location is unset.
func (l Location) IsZero() bool {
	return strings.TrimSpace(string(l)) == ""
}

// Path returns the filesystem path the location refers to.
func (l Location) Path() (string, error) {
	if l.IsZero() {
		return "", fmt.Errorf("%w: empty location", ErrUnsupportedLocation)
	}
	u, err := url.Parse(string(l))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedLocation, err)
	}
	switch u.Scheme {
	case "file":
		if u.Host != "" && u.Host != "localhost" {
			return "", fmt.Errorf("%w: remote host %q", ErrUnsupportedLocation, u.Host)
		}
		return filepath.FromSlash(u.Path), nil
	case "":
		return filepath.Clean(string(l)), nil
	default:
		return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedLocation, u.Scheme)
	}
}

func (l Location) String() string {
	return string(l)
}
