package target

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/skillpackhq/skillpack/internal/core"
)

// BaseTarget provides the shared install flow. Individual targets embed it
// and configure the layout fields.
type BaseTarget struct {
	name        string
	displayName string
	treeDir     string          // base the copied tree nests under as <skill>/<version>, e.g. ".shared"
	pointerDir  string          // directory for the pointer stub; empty = no pointer
	rename      core.RenameFunc // per-file rename, nil = identity
}

func (b *BaseTarget) Name() string        { return b.name }
func (b *BaseTarget) DisplayName() string { return b.displayName }

// Install copies the skill version tree and, for targets that use one,
// writes the pointer stub. All reported paths are destination-root
// relative so a wildcard run concatenates cleanly.
func (b *BaseTarget) Install(assets fs.FS, inst Installation) (*core.CopyReport, error) {
	treeRel := path.Join(b.treeDir, inst.Skill, inst.Version)

	opts := core.CopyOptions{Force: inst.Force, DryRun: inst.DryRun}
	src := path.Join(inst.Skill, inst.Version)

	report, err := core.CopyTree(assets, src, filepath.Join(inst.DestDir, filepath.FromSlash(treeRel)), opts, b.rename)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.displayName, err)
	}

	// Re-root the report paths at the destination root.
	for i, p := range report.Written {
		report.Written[i] = path.Join(treeRel, p)
	}
	for i, p := range report.Skipped {
		report.Skipped[i] = path.Join(treeRel, p)
	}

	if b.pointerDir != "" {
		rel := path.Join(b.pointerDir, inst.Skill+".md")
		abs := filepath.Join(inst.DestDir, filepath.FromSlash(rel))
		wrote, err := core.WriteFileOnce(abs, pointerContent(inst, treeRel), opts)
		if err != nil {
			return nil, fmt.Errorf("%s pointer: %w", b.displayName, err)
		}
		if wrote {
			report.Written = append(report.Written, rel)
		} else {
			report.Skipped = append(report.Skipped, rel)
		}
	}

	return report, nil
}

// pointerContent renders the pointer stub: a short markdown file the host
// reads as an indirection into the bulk-copied tree.
func pointerContent(inst Installation, treeRel string) []byte {
	return []byte(fmt.Sprintf(`# %s (version %s)

This project uses the %s guidance pack, version %s.

The full pack is installed at %s/. Read its SKILL file first; it indexes
the rest of the pack.
`, inst.Skill, inst.Version, inst.Skill, inst.Version, treeRel))
}
