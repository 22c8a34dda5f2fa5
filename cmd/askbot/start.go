package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/askbot/pkg/log"
	"github.com/sandevgo/askbot/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the AskBot services",
	Long:  `Initializes the history store, the backend bridge and the chat transport, then serves until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting askbot")

		services := NewServices(ctx)

		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)

		logger.Info().Msg("askbot has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
