// Package target defines the install targets for skillpack.
//
// A Target represents one AI-host directory convention (Cursor, Claude,
// Antigravity, Kiro, or plain docs). Each target knows its own destination
// layout, pointer-file convention, and filename rewrites. Targets are
// self-contained Go structs registered at init time.
package target

import (
	"io/fs"

	"github.com/skillpackhq/skillpack/internal/core"
)

// Wildcard selects every registered target.
const Wildcard = "all"

// Installation describes one install request, shared across all targets the
// dispatcher runs it against.
type Installation struct {
	Skill   string
	Version string
	DestDir string // project root the layout is created under
	Force   bool
	DryRun  bool
}

// Target installs a resolved skill version into one AI-host layout.
type Target interface {
	// Identity
	Name() string        // machine name: "cursor", "claude"
	DisplayName() string // human name: "Cursor", "Claude Code"

	// Install copies the version tree (and pointer file, if the target has
	// one) under inst.DestDir. Reported paths are relative to inst.DestDir.
	Install(assets fs.FS, inst Installation) (*core.CopyReport, error)
}

// --- Registry ---

var targets []Target

// Register adds a target to the global registry.
func Register(t Target) { targets = append(targets, t) }

// All returns all registered targets.
func All() []Target { return targets }

// Names returns the machine names of all registered targets.
func Names() []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name()
	}
	return names
}

// ByName resolves a target selector. The wildcard returns every target;
// an unknown name returns a NotFoundError listing the valid selectors.
func ByName(name string) ([]Target, error) {
	if name == Wildcard {
		return All(), nil
	}
	for _, t := range targets {
		if t.Name() == name {
			return []Target{t}, nil
		}
	}
	return nil, &core.NotFoundError{
		Kind:         "target",
		Name:         name,
		Alternatives: append(Names(), Wildcard),
	}
}
