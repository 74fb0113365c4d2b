package main

import (
	"fmt"

	"github.com/Veraticus/markbucks/internal/cli"
	"github.com/Veraticus/markbucks/internal/model"
	"github.com/Veraticus/markbucks/internal/recorder"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record one transaction",
		Long: `Record one transaction without opening the interactive recorder.
Amounts must be positive. Put "--" before an amount that starts with a dash
so it is not read as a flag; it is then rejected as an invalid amount.

Examples:
  # An expense in the first expense category
  markbucks add 12.50

  # An income
  markbucks add 2500 --type income --category Salary

  # Arguments after "--" are never parsed as flags
  markbucks add --type expense -- 12.50`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringP("type", "t", "", "transaction type: income or expense (default from config)")
	cmd.Flags().StringP("category", "c", "", "category (default: first category of the type)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	typeFlag, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")

	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	txnType := a.settings.DefaultType
	if typeFlag != "" {
		txnType, err = model.ParseTransactionType(typeFlag)
		if err != nil {
			return err
		}
	}

	if category == "" {
		if options := a.recorder.Catalog().For(txnType); len(options) > 0 {
			category = options[0]
		}
	}

	saved, err := a.recorder.Save(ctx, recorder.Input{
		Type:     txnType,
		Category: category,
		Amount:   args[0],
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
		fmt.Sprintf("%s: %s %s (%s) → %s",
			recorder.MsgSaved,
			saved.Transaction.Type,
			saved.Transaction.Amount,
			saved.Transaction.Category,
			saved.FileName)))
	return nil
}
