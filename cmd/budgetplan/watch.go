package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"budgetplan/internal/amqp"
	"budgetplan/internal/cli"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print budget change notifications until interrupted",
	Long:  "Consume budget change messages from AMQP_URL and print one line per change.",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cli.LoadEnvFile()
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return err
	}
	logger := cli.SetupLogger(cfg)
	if cfg.AMQPURL == "" {
		return errors.New("watch needs AMQP_URL")
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := cli.ShutdownContext(logger)
	defer cancel()

	err = client.ConsumeBudgetChanges(ctx, func(msg *amqp.BudgetChangedMessage) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %d\n",
			msg.Timestamp.Format("2006-01-02T15:04:05"), msg.Action, msg.Month, msg.Amount)
		return err
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
