package main

import (
	"os/signal"
	"syscall"

	"github.com/MKhiriev/case-sync/internal/client"
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Run the sync engine until interrupted",
	Long:    `Starts the scheduler, the backup rotator, the mirror watcher and, when an address is configured, the control API.`,
	GroupID: "engine",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printBuildInfo(cmd.OutOrStdout())

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log := logger.NewClientLogger("casesync", logger.FileOptions{
			Path:  cfg.Log.File,
			Level: cfg.Log.Level,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		defer stop()

		app, err := client.NewApp(ctx, cfg, buildInfo(), log)
		if err != nil {
			log.Error().Err(err).Msg("init case-sync app error")
			return err
		}
		defer app.Close()

		if err = app.Run(ctx); err != nil {
			log.Error().Err(err).Msg("case-sync run error")
			return err
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printBuildInfo(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
