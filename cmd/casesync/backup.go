package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/case-sync/internal/client"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:     "backup",
	Aliases: []string{"backups"},
	Short:   "Manage local backups of the case record",
	GroupID: "control",
}

var backupListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored backups, oldest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctrl client.Controller) error {
			backups, err := ctrl.ListBackups(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), backups, func(w io.Writer) {
				if len(backups) == 0 {
					fmt.Fprintln(w, "No backups")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "KEY\tCREATED\tITEMS\tLATEST")
				for _, b := range backups {
					latest := ""
					if b.Latest {
						latest = "*"
					}
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", b.Key, b.CreatedAt.Local().Format(time.DateTime), b.Size, latest)
				}
				tw.Flush()
			})
		})
	},
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot the current record and rotate old backups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctrl client.Controller) error {
			info, err := ctrl.CreateBackup(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), info, func(w io.Writer) {
				fmt.Fprintf(w, "Created %s (%d items)\n", info.Key, info.Size)
			})
		})
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <key>",
	Short: "Replace the local record with a backup",
	Long:  `Replaces the local record with the given backup. The restored record is marked as a local change and pushed by the next sync.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctrl client.Controller) error {
			record, err := ctrl.RestoreBackup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), record, func(w io.Writer) {
				fmt.Fprintf(w, "Restored %s (%d items)\n", args[0], record.Size())
			})
		})
	},
}

func init() {
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)

	rootCmd.AddCommand(backupCmd)
}
