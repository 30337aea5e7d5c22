package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions [skill]",
	Short: "List the bundled versions of a skill",
	Long: `List the version labels bundled for a skill, sorted.

With no argument, lists the versions of every bundled skill.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeps()

		if len(args) == 1 {
			versions, err := d.resolver.Versions(args[0])
			if err != nil {
				return err
			}
			for _, v := range versions {
				fmt.Fprintln(os.Stdout, v)
			}
			return nil
		}

		infos, err := d.resolver.Skills()
		if err != nil {
			return err
		}
		for _, info := range infos {
			for _, v := range info.Versions {
				fmt.Fprintf(os.Stdout, "%s %s\n", info.Name, v)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}
