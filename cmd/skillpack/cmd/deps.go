package cmd

import (
	"io/fs"

	skillpack "github.com/skillpackhq/skillpack"
	"github.com/skillpackhq/skillpack/internal/core"
	"github.com/skillpackhq/skillpack/internal/update"
)

// deps holds shared dependencies for CLI commands. The asset tree is
// passed in explicitly so tests can swap it for a fixture filesystem.
type deps struct {
	assets   fs.FS
	resolver *core.Resolver
	checker  *update.Checker
}

// newDeps creates shared dependencies over the bundled asset tree.
// Called lazily by commands that need them.
func newDeps() *deps {
	assets := skillpack.Skills()
	return &deps{
		assets:   assets,
		resolver: core.NewResolver(assets),
		checker:  &update.Checker{Version: Version},
	}
}
