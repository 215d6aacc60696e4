package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/case-sync/internal/client"
	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "casesync",
	Short: "Keep a local case record in sync with a remote copy",
	Long: `casesync keeps a local case record (timeline, evidence, correspondence and
strategy) in sync with a remote git repository or HTTP file store.

"casesync run" starts the long-running engine. The other commands run in-process
when no engine holds the store, and talk to the running engine's control API
otherwise.`,
	SilenceUsage: true,
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print command results as JSON")

	rootCmd.AddGroup(
		&cobra.Group{ID: "engine", Title: "Engine:"},
		&cobra.Group{ID: "control", Title: "Control:"},
	)
}

func loadConfig(cmd *cobra.Command) (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	return cfg, nil
}

// openController loads the config and returns a controller for one-shot
// commands. Logs go to the configured file or stderr so that stdout only
// carries the command result.
func openController(cmd *cobra.Command) (client.Controller, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger("casesync-cli", logger.FileOptions{
		Path:     cfg.Log.File,
		Level:    cfg.Log.Level,
		Fallback: os.Stderr,
	})

	return client.OpenController(cmd.Context(), cfg, buildInfo(), log)
}

// withController opens a controller, runs fn and closes the controller.
func withController(cmd *cobra.Command, fn func(client.Controller) error) error {
	ctrl, err := openController(cmd)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	return fn(ctrl)
}

// printResult writes v as indented JSON when --json is set and calls human
// otherwise.
func printResult(w io.Writer, v any, human func(io.Writer)) error {
	if !jsonOutput {
		human(w)
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
