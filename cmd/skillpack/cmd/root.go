package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillpackhq/skillpack/internal/update"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// noticeWait bounds how long Execute lingers for the background update
// lookup after the main command has printed its output.
const noticeWait = 2 * time.Second

var cliVersionFlag bool

// updateNotice is the handle for the detached background check, flushed
// after the command finishes so the hint lands below the command output.
var updateNotice *update.Notice

var rootCmd = &cobra.Command{
	Use:   "skillpack",
	Short: "Install versioned guidance packs for AI coding assistants",
	Long: `Skillpack ships versioned documentation sets ("skills") and installs
them into a project in the directory layout your AI assistant expects:
Cursor, Claude Code, Antigravity, Kiro, or a plain docs/ tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// A bare invocation prints usage; Run must exist for cobra to reach
	// the PersistentPreRun hook that handles -V.
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cliVersionFlag {
			fmt.Printf("skillpack %s (commit: %s, built: %s)\n", Version, Commit, Date)
			os.Exit(0)
		}
		maybeStartUpdateCheck(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skillpack %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

// maybeStartUpdateCheck fires the rate-limited background version lookup.
// The dedicated update command does its own foreground check, and offline
// runs skip the network entirely.
func maybeStartUpdateCheck(cmd *cobra.Command) {
	switch cmd.Name() {
	case "update", "version", "help", "completion":
		return
	}
	offline, _ := cmd.Flags().GetBool("offline")
	checker := &update.Checker{Version: Version}
	updateNotice = checker.Background(offline)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&cliVersionFlag, "cli-version", "V", false, "Print the skillpack version and exit")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command, then flushes any pending update notice so
// it appears after the command's own output.
func Execute() error {
	err := rootCmd.Execute()
	updateNotice.Flush(os.Stderr, Version, noticeWait)
	return err
}
