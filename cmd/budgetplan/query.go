package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgetplan/internal/cli"
	"budgetplan/internal/core"
)

var (
	flagFrom string
	flagTo   string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Budgeted total between two dates, both included",
	Example: `  budgetplan query --from 2025-01-15 --to 2025-03-10
  budgetplan query --from 2025-02-01 --to 2025-02-01`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&flagFrom, "from", "", "First day of the range (YYYY-MM-DD)")
	queryCmd.Flags().StringVar(&flagTo, "to", "", "Last day of the range (YYYY-MM-DD)")
	_ = queryCmd.MarkFlagRequired("from")
	_ = queryCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, _ []string) error {
	start, err := core.ParseDate(flagFrom)
	if err != nil {
		return err
	}
	end, err := core.ParseDate(flagTo)
	if err != nil {
		return err
	}
	if err := (core.DateRange{Start: start, End: end}).Validate(); err != nil {
		return err
	}

	return withApp(cmd.Context(), func(app *cli.App) error {
		total, err := app.Service.Prorate(cmd.Context(), start, end)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), total)
		return nil
	})
}
