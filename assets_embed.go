// Package skillpack bundles versioned guidance packs ("skills") and exposes
// them as an fs.FS for the installer CLI.
package skillpack

import (
	"embed"
	"io/fs"
)

// skillsFS contains the bundled skill trees. Each skill is a top-level
// directory holding one subdirectory per version label.
//
//go:embed skills
var skillsFS embed.FS

// Skills returns the bundled skill tree rooted below the skills directory,
// so that skill names are top-level entries.
func Skills() fs.FS {
	sub, err := fs.Sub(skillsFS, "skills")
	if err != nil {
		// The skills directory is embedded at build time; fs.Sub can only
		// fail on an invalid path argument.
		panic(err)
	}
	return sub
}
