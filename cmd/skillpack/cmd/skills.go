package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the bundled skills",
	Long:  `List every bundled skill with its versions and description.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeps()

		infos, err := d.resolver.Skills()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Skill\tVersions\tDescription")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, strings.Join(info.Versions, ", "), info.Description)
		}
		return w.Flush()
	},
}

var skillsShowCmd = &cobra.Command{
	Use:   "show <skill> [version]",
	Short: "Render a skill's SKILL.md in the terminal",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeps()

		skill := args[0]
		if _, err := d.resolver.ResolveSkill(skill); err != nil {
			return err
		}

		version := ""
		if len(args) > 1 {
			version = args[1]
		} else {
			latest, err := d.resolver.LatestVersion(skill)
			if err != nil {
				return err
			}
			version = latest
		}
		versionPath, err := d.resolver.ResolveVersion(skill, version)
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(d.assets, path.Join(versionPath, "SKILL.md"))
		if err != nil {
			return fmt.Errorf("reading SKILL.md for %s %s: %w", skill, version, err)
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		out, err := r.Render(string(data))
		if err != nil {
			return fmt.Errorf("rendering SKILL.md: %w", err)
		}
		fmt.Fprint(os.Stdout, out)
		return nil
	},
}

func init() {
	skillsCmd.AddCommand(skillsShowCmd)
	rootCmd.AddCommand(skillsCmd)
}
