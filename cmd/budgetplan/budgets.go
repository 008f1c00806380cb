package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgetplan/internal/cli"
	"budgetplan/internal/core"
)

var (
	flagMonth  string
	flagAmount string
)

var setCmd = &cobra.Command{
	Use:     "set",
	Short:   "Set the budget of a month",
	Example: "  budgetplan set --month 2025-01 --amount 3100",
	RunE:    runSet,
}

var deleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the budget of a month",
	Example: "  budgetplan delete --month 2025-01",
	RunE:    runDelete,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored budgets",
	RunE:  runList,
}

func init() {
	setCmd.Flags().StringVar(&flagMonth, "month", "", "Budget month (YYYY-MM)")
	setCmd.Flags().StringVar(&flagAmount, "amount", "", "Amount for the whole month")
	_ = setCmd.MarkFlagRequired("month")
	_ = setCmd.MarkFlagRequired("amount")

	deleteCmd.Flags().StringVar(&flagMonth, "month", "", "Budget month (YYYY-MM)")
	_ = deleteCmd.MarkFlagRequired("month")

	rootCmd.AddCommand(setCmd, deleteCmd, listCmd)
}

func runSet(cmd *cobra.Command, _ []string) error {
	month, err := core.ParseYearMonth(flagMonth)
	if err != nil {
		return err
	}
	amount, err := core.ParseAmount(flagAmount)
	if err != nil {
		return fmt.Errorf("amount %q: %w", flagAmount, err)
	}

	return withApp(cmd.Context(), func(app *cli.App) error {
		return app.Service.SetBudget(cmd.Context(), core.Budget{Month: month, Amount: amount})
	})
}

func runDelete(cmd *cobra.Command, _ []string) error {
	month, err := core.ParseYearMonth(flagMonth)
	if err != nil {
		return err
	}

	return withApp(cmd.Context(), func(app *cli.App) error {
		return app.Service.DeleteBudget(cmd.Context(), month)
	})
}

func runList(cmd *cobra.Command, _ []string) error {
	return withApp(cmd.Context(), func(app *cli.App) error {
		budgets, err := app.Service.ListBudgets(cmd.Context())
		if err != nil {
			return err
		}
		if len(budgets) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No budgets found.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "Month\tAmount\tDays\tDaily\t")
		for _, b := range budgets {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t\n", b.Month, b.Amount, b.Month.Days(), b.Amount/b.Month.Days())
		}
		return w.Flush()
	})
}
