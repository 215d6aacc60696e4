package main

import (
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/case-sync/internal/client"
	"github.com/MKhiriev/case-sync/models"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Short:   "Run one sync cycle now",
	GroupID: "control",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctrl client.Controller) error {
			result, err := ctrl.SyncNow(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), result, func(w io.Writer) {
				fmt.Fprintf(w, "Pulled: %t\nPushed: %t\nRebased: %t\nAttempts: %d\n",
					result.Pulled, result.Pushed, result.Rebased, result.Attempts)
				if result.CommitID != "" {
					fmt.Fprintf(w, "Commit: %s\n", result.CommitID)
				}
				fmt.Fprintf(w, "Took: %s\n", result.Duration.Round(time.Millisecond))
			})
		})
	},
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show the sync state",
	GroupID: "control",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctrl client.Controller) error {
			status, err := ctrl.Status(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), status, func(w io.Writer) {
				printStatus(w, status)
			})
		})
	},
}

var policyCmd = &cobra.Command{
	Use:     "policy",
	Short:   "Show or change the conflict policy",
	GroupID: "control",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctrl client.Controller) error {
			status, err := ctrl.Status(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), map[string]models.ConflictPolicy{"policy": status.Policy}, func(w io.Writer) {
				fmt.Fprintln(w, status.Policy)
			})
		})
	},
}

var policySetCmd = &cobra.Command{
	Use:       "set <local-wins|remote-wins|merge>",
	Short:     "Change the conflict policy",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(models.PolicyLocalWins), string(models.PolicyRemoteWins), string(models.PolicyMerge)},
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := models.ParseConflictPolicy(args[0])
		if err != nil {
			return err
		}
		return withController(cmd, func(ctrl client.Controller) error {
			if err := ctrl.SetPolicy(cmd.Context(), policy); err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), map[string]models.ConflictPolicy{"policy": policy}, func(w io.Writer) {
				fmt.Fprintf(w, "Policy set to %s\n", policy)
			})
		})
	},
}

func printStatus(w io.Writer, status models.SyncStatus) {
	fmt.Fprintf(w, "State: %s\n", status.State)
	fmt.Fprintf(w, "Policy: %s\n", status.Policy)
	fmt.Fprintf(w, "Remote reachable: %t\n", status.RemoteReachable)
	fmt.Fprintf(w, "Local changes: %t\n", status.HasLocalChanges)
	fmt.Fprintf(w, "Ahead: %t  Behind: %t\n", status.IsAhead, status.IsBehind)
	fmt.Fprintf(w, "Last sync: %s\n", formatTime(status.LastSync))
	fmt.Fprintf(w, "Last cycle: %s\n", formatTime(status.LastCycleAt))
	if status.PendingSince != nil {
		fmt.Fprintf(w, "Pending since: %s\n", formatTime(status.PendingSince))
	}
	if status.LastError != "" {
		fmt.Fprintf(w, "Last error: %s\n", status.LastError)
	}
}

func formatTime(ts *time.Time) string {
	if ts == nil || ts.IsZero() {
		return "never"
	}
	return ts.Local().Format(time.DateTime)
}

func init() {
	policyCmd.AddCommand(policySetCmd)

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(policyCmd)
}
