package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/Veraticus/markbucks/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points the preferences at a temporary database and
// returns an empty folder for transaction files.
func setupTestConfig(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults(viper.GetViper())

	dir := t.TempDir()
	viper.Set(config.KeyPreferencesPath, filepath.Join(dir, "prefs.db"))
	viper.Set(config.KeyLogFile, "")

	ledger := filepath.Join(dir, "ledger")
	require.NoError(t, os.Mkdir(ledger, 0o750))
	return ledger
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
