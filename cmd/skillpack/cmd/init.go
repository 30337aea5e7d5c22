package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillpackhq/skillpack/internal/core"
	"github.com/skillpackhq/skillpack/internal/core/target"
	"github.com/skillpackhq/skillpack/internal/tui"
)

var initCmd = &cobra.Command{
	Use:   "init [skill] [version]",
	Short: "Install a guidance pack into a project",
	Long: `Install a bundled skill at a given version into the target project,
laid out for the AI host selected with --ai.

Targets:
  cursor       .cursor/commands/<skill>.md + .shared/<skill>/<version>/ (.md renamed to .mdc)
  claude       .claude/skills/<skill>/<version>/
  antigravity  .agent/workflows/<skill>.md + .shared/<skill>/<version>/
  kiro         .kiro/steering/<skill>.md + .shared/<skill>/<version>/
  docs         docs/<skill>/<version>/
  all          every target above, in sequence

With no version the newest bundled version is installed. Existing files
are never overwritten unless --force is set; re-running with --force also
repairs a partially written install.

Examples:
  skillpack init --ai docs odoo 18.0
  skillpack init --ai claude odoo --dest ./my-project
  skillpack init --ai all owl --dry-run`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeps()

		force, _ := cmd.Flags().GetBool("force")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		aiFlag, _ := cmd.Flags().GetString("ai")

		skill, _ := cmd.Flags().GetString("skill")
		if skill == "" && len(args) > 0 {
			skill = args[0]
		}
		if skill == "" {
			if !isInteractive() {
				infos, err := d.resolver.Skills()
				if err != nil {
					return err
				}
				var names []string
				for _, info := range infos {
					names = append(names, info.Name)
				}
				return fmt.Errorf("skill name required; available: %s", strings.Join(names, ", "))
			}
			infos, err := d.resolver.Skills()
			if err != nil {
				return err
			}
			skill, err = tui.PickSkill(infos)
			if err != nil {
				return err
			}
		}

		version, _ := cmd.Flags().GetString("version")
		if version == "" && len(args) > 1 {
			version = args[1]
		}

		if _, err := d.resolver.ResolveSkill(skill); err != nil {
			return err
		}
		if version == "" {
			latest, err := d.resolver.LatestVersion(skill)
			if err != nil {
				return err
			}
			version = latest
		}
		if _, err := d.resolver.ResolveVersion(skill, version); err != nil {
			return err
		}

		targets, err := target.ByName(aiFlag)
		if err != nil {
			return err
		}

		destDir, err := resolveDestDir(cmd)
		if err != nil {
			return err
		}

		inst := target.Installation{
			Skill:   skill,
			Version: version,
			DestDir: destDir,
			Force:   force,
			DryRun:  dryRun,
		}

		if dryRun {
			fmt.Fprintln(os.Stdout, "Dry run - no files will be written.")
		}

		// Fail fast: the first installer error aborts the remaining targets.
		for _, t := range targets {
			report, err := t.Install(d.assets, inst)
			if err != nil {
				return err
			}
			printReport(t.DisplayName(), inst, report, dryRun)
		}
		return nil
	},
}

// printReport prints one target's install result. Skipped files only show
// in the per-target summary count.
func printReport(display string, inst target.Installation, report *core.CopyReport, dryRun bool) {
	verb := "wrote"
	if dryRun {
		verb = "would write"
	}
	for _, p := range report.Written {
		fmt.Fprintf(os.Stdout, "%s: %s\n", verb, p)
	}
	fmt.Fprintf(os.Stdout, "%s: %s %s, %d file(s), %d skipped\n",
		display, inst.Skill, inst.Version, len(report.Written), len(report.Skipped))
}

func init() {
	initCmd.Flags().String("ai", "claude", "Install target: cursor, claude, antigravity, kiro, docs, or all")
	initCmd.Flags().String("skill", "", "Skill name (alternative to the positional argument)")
	initCmd.Flags().String("version", "", "Version label (default: newest bundled version)")
	initCmd.Flags().String("dest", "", "Destination project directory (default: current directory)")
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("dry-run", false, "Report what would be written without writing")
	initCmd.Flags().Bool("offline", false, "Skip the background update check")
	rootCmd.AddCommand(initCmd)
}
