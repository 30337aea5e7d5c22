package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer skillpack is available",
	Long: `Check the package registry and the release feed for a newer version
and print a definitive up-to-date or new-version report.

This check is advisory: network failures never fail the command, and
--offline skips it entirely. Unlike the background check fired by other
commands, the update command is not rate limited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeps()
		offline, _ := cmd.Flags().GetBool("offline")
		d.checker.Report(cmd.Context(), os.Stdout, offline)
		return nil
	},
}

func init() {
	updateCmd.Flags().Bool("offline", false, "Skip the network check")
	rootCmd.AddCommand(updateCmd)
}
