package main

import (
	"fmt"

	"github.com/Veraticus/markbucks/internal/cli"
	"github.com/Veraticus/markbucks/internal/config"
	"github.com/Veraticus/markbucks/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories offered for each type",
		Args:  cobra.NoArgs,
		RunE:  runCategories,
	}

	cmd.Flags().StringP("type", "t", "", "only list categories of this type (income or expense)")

	return cmd
}

func runCategories(cmd *cobra.Command, _ []string) error {
	typeFlag, _ := cmd.Flags().GetString("type")

	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	types := []model.TransactionType{model.TypeIncome, model.TypeExpense}
	if typeFlag != "" {
		t, err := model.ParseTransactionType(typeFlag)
		if err != nil {
			return err
		}
		types = []model.TransactionType{t}
	}

	out := cmd.OutOrStdout()
	for i, t := range types {
		if i > 0 {
			fmt.Fprintln(out)
		}
		color := cli.ExpenseColor
		if t == model.TypeIncome {
			color = cli.IncomeColor
		}
		fmt.Fprintln(out, cli.FormatList(string(t), color, settings.Catalog.For(t)))
	}
	return nil
}
