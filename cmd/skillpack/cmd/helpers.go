package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// resolveDestDir resolves the --dest flag or falls back to cwd.
func resolveDestDir(cmd *cobra.Command) (string, error) {
	dest, _ := cmd.Flags().GetString("dest")
	if dest != "" {
		return dest, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// isInteractive reports whether both stdin and stdout are terminals, i.e.
// whether the skill picker can run.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
