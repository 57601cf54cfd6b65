package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

// runApp wires the app and runs fn with a context canceled on SIGINT or
// SIGTERM.
func runApp(cmd *cobra.Command, opts *rootOptions, longRunning bool, fn func(ctx context.Context, a *app) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, opts, longRunning)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid challenge id %q", s)
	}
	return id, nil
}
