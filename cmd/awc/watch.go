package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"awc_tracker/internal/scheduler"
)

func watchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Refresh every challenge periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts, true, func(ctx context.Context, a *app) error {
				a.logger.Info("starting awc watcher",
					"interval", a.cfg.Watch.Interval,
					"storage", a.cfg.Storage.Driver,
					"rabbitmq", a.cfg.RabbitMQ.Enabled,
				)

				sched := scheduler.NewScheduler(a.tracker, a.cfg.Watch.Interval, a.logger)
				if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				a.logger.Info("received shutdown signal")
				return nil
			})
		},
	}
}
