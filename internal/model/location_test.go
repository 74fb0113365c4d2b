package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFromPath(t *testing.T) {
	dir := t.TempDir()

	loc, err := LocationFromPath(dir)
	require.NoError(t, err)
	assert.Contains(t, loc.String(), "file://")

	path, err := loc.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(dir), path)

	_, err = LocationFromPath("  ")
	assert.ErrorIs(t, err, ErrUnsupportedLocation)
}

func TestLocation_Path(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		wantPath string
		wantErr  bool
	}{
		{name: "file uri", loc: "file:///home/user/ledger", wantPath: filepath.FromSlash("/home/user/ledger")},
		{name: "localhost", loc: "file://localhost/srv/ledger", wantPath: filepath.FromSlash("/srv/ledger")},
		{name: "escaped space", loc: "file:///home/user/my%20ledger", wantPath: filepath.FromSlash("/home/user/my ledger")},
		{name: "bare path", loc: "/var/ledger/", wantPath: filepath.Clean("/var/ledger/")},
		{name: "remote host", loc: "file://nas/share", wantErr: true},
		{name: "content uri", loc: "content://com.android.externalstorage/tree/primary", wantErr: true},
		{name: "empty", loc: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.loc.Path()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, got)
		})
	}
}
