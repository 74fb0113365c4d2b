package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Veraticus/markbucks/internal/tui"
	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the transaction recorder",
		Long: `Open the interactive recorder. On first use it asks for the folder
transactions are written to.`,
		Args: cobra.NoArgs,
		RunE: runUI,
	}
}

func runUI(cmd *cobra.Command, _ []string) error {
	return startTUI(cmd, false)
}

// startTUI runs the interactive UI. Logs go to the configured log file
// while the UI owns the terminal.
func startTUI(cmd *cobra.Command, chooseFolder bool) error {
	ctx := cmd.Context()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	restore, err := logToFile(a.settings.LogFile)
	if err != nil {
		return err
	}
	defer restore()

	return tui.Run(ctx,
		tui.WithGate(a.gate),
		tui.WithRecorder(a.recorder),
		tui.WithNoticeDuration(a.settings.NoticeDuration),
		tui.WithChooseFolder(chooseFolder),
	)
}

// logToFile redirects logging to path and returns a function restoring
// logging to stderr. An empty path discards logs.
func logToFile(path string) (func(), error) {
	restore := func() {
		_ = setupLogging(os.Stderr)
	}

	if path == "" {
		if err := setupLogging(io.Discard); err != nil {
			return nil, err
		}
		return restore, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) // #nosec G304 -- configured log path
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := setupLogging(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() {
		restore()
		_ = f.Close()
	}, nil
}
