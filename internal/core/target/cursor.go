package target

import "strings"

// Cursor installs into the shared tree with a command stub under
// .cursor/commands/. Cursor reads rule files with a .mdc extension, so
// every .md file in the pack is renamed on the way in.
type Cursor struct {
	BaseTarget
}

// NewCursor creates a configured Cursor target.
func NewCursor() *Cursor {
	return &Cursor{BaseTarget{
		name:        "cursor",
		displayName: "Cursor",
		treeDir:     ".shared",
		pointerDir:  ".cursor/commands",
		rename:      mdToMdc,
	}}
}

// mdToMdc rewrites a .md filename to .mdc; other names pass through.
func mdToMdc(rel string) string {
	if strings.HasSuffix(rel, ".md") {
		return strings.TrimSuffix(rel, ".md") + ".mdc"
	}
	return rel
}

func init() { Register(NewCursor()) }
