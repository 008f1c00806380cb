package main

import (
	"context"

	"github.com/spf13/cobra"

	"budgetplan/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:           "budgetplan",
	Short:         "Prorate monthly budgets across date ranges",
	Long:          "Store monthly budget amounts and compute the budgeted total between two dates, splitting partial months by day.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// withApp wires the application for one command run and closes it afterwards.
func withApp(ctx context.Context, fn func(*cli.App) error) error {
	app, err := cli.NewApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.Logger.Warn("Cleanup failed", "error", err)
		}
	}()
	return fn(app)
}
