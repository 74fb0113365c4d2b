package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/markbucks/internal/cli"
	"github.com/Veraticus/markbucks/internal/common"
	"github.com/Veraticus/markbucks/internal/ofx"
	"github.com/Veraticus/markbucks/internal/service"
	"github.com/spf13/cobra"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your bank.
Each statement transaction becomes a transaction file: debits as expenses and
credits as incomes. Zero-amount entries are skipped, and entries imported
by an earlier run (same account and transaction ID) are never written again.

Examples:
  # Import single file
  markbucks import-ofx ~/Downloads/chase_jan_2024.qfx

  # Import all QFX files in a directory into chosen categories
  markbucks import-ofx ~/Downloads/*.qfx --expense-category Groceries --income-category Salary`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without writing files")
	cmd.Flags().String("income-category", "", "category for credits (default: first income category)")
	cmd.Flags().String("expense-category", "", "category for debits (default: first expense category)")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	incomeCategory, _ := cmd.Flags().GetString("income-category")
	expenseCategory, _ := cmd.Flags().GetString("expense-category")

	files, err := expandFiles(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := interrupts.HandleInterrupts(cmd.Context(), "Import", "Files already written are kept.")
	defer interrupts.Stop()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	importer, err := ofx.NewImporter(a.recorder, a.store.Preferences(service.ImportNamespace), ofx.Categories{
		Income:  incomeCategory,
		Expense: expenseCategory,
	})
	if err != nil {
		return err
	}

	var entries []ofx.Entry
	parser := ofx.NewParser()
	for _, path := range files {
		parsed, err := parseOFXFile(ctx, parser, path)
		if err != nil {
			common.LogError(err, "Failed to parse OFX file", common.Fields{"file": path})
			fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("%s: %v", filepath.Base(path), err)))
			continue
		}
		common.LogInfo("Processed file", common.Fields{
			"file":               filepath.Base(path),
			"transactions_found": len(parsed),
		})
		entries = append(entries, parsed...)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("No transactions found in any file"))
		return nil
	}

	if dryRun {
		return previewImport(ctx, cmd, importer, entries)
	}

	progress := cli.NewProgress(cmd.ErrOrStderr(), len(entries), "Writing transactions...")
	result, err := importer.Import(ctx, entries, progress.Step)
	if err != nil {
		return err
	}
	progress.Finish()

	summary := cli.FormatField("written", fmt.Sprint(len(result.Files))) + "\n" +
		cli.FormatField("duplicates", fmt.Sprint(result.Duplicates)) + "\n" +
		cli.FormatField("zero amount", fmt.Sprint(result.Zero))
	fmt.Fprintln(out, cli.RenderBox("Import complete", summary))
	return nil
}

func parseOFXFile(ctx context.Context, parser *ofx.Parser, path string) ([]ofx.Entry, error) {
	f, err := os.Open(filepath.Clean(path)) // #nosec G304 -- user supplied statement file
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close file", "file", path, "error", closeErr)
		}
	}()

	return parser.ParseFile(ctx, f)
}

func previewImport(ctx context.Context, cmd *cobra.Command, importer *ofx.Importer, entries []ofx.Entry) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("Dry run: nothing is written"))

	for _, entry := range entries {
		seen, err := importer.Imported(ctx, entry)
		if err != nil {
			return err
		}
		if seen {
			fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("  skip  %s  %s (already imported)",
				entry.Posted.Format("2006-01-02"), entry.Name)))
			continue
		}

		txn, ok, err := importer.Convert(entry)
		if err != nil {
			return fmt.Errorf("entry %s: %w", entry.FITID, err)
		}
		if !ok {
			fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("  skip  %s  %s (zero amount)",
				entry.Posted.Format("2006-01-02"), entry.Name)))
			continue
		}
		fmt.Fprintf(out, "  %-8s %10s  %-14s %s  %s\n",
			txn.Type, txn.Amount, txn.Category, txn.FileName(), entry.Name)
	}
	return nil
}

// expandFiles resolves glob patterns. Patterns matching nothing are kept
// when they name an existing file.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) > 0 {
			files = append(files, matches...)
			continue
		}
		if _, err := os.Stat(pattern); err == nil {
			files = append(files, pattern)
		} else {
			slog.Warn("No files found matching pattern", "pattern", pattern)
		}
	}

	if len(files) == 0 {
		return nil, errors.New("no files found to import")
	}
	return files, nil
}
