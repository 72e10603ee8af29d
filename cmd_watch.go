package main

import (
	"github.com/isunjn/snlc/pipelines"
	"github.com/isunjn/snlc/watch"

	"github.com/spf13/cobra"

	"context"
	"os"
	"os/signal"
	"syscall"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-check a file whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		file := args[0]
		return watch.Watch(ctx, file, cfg.Watch.Debounce.Duration, logger, func() {
			M, errs := pipelines.Check(file, options())
			if report(M, errs) == nil {
				Stdout(out.Status(true) + "\t" + file + "\n")
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
