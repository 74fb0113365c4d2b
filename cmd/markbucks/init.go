package main

import (
	"fmt"

	"github.com/Veraticus/markbucks/internal/cli"
	"github.com/Veraticus/markbucks/internal/model"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [folder]",
		Short: "Choose the folder transactions are written to",
		Long: `Choose the folder transactions are written to. Without an argument the
interactive folder picker opens. Files already written to a previous folder
stay where they are.

Examples:
  # Pick interactively
  markbucks init

  # Use a notes vault directly
  markbucks init ~/Notes/Finance`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return startTUI(cmd, true)
	}

	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	loc, err := model.LocationFromPath(args[0])
	if err != nil {
		return err
	}

	if _, _, err := a.gate.Complete(ctx, loc); err != nil {
		return err
	}

	path, _ := loc.Path()
	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Transactions will be saved to "+path))
	return nil
}
