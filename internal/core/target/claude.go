package target

// Claude installs directly into .claude/skills/, which Claude Code reads
// without an indirection file.
type Claude struct {
	BaseTarget
}

// NewClaude creates a configured Claude Code target.
func NewClaude() *Claude {
	return &Claude{BaseTarget{
		name:        "claude",
		displayName: "Claude Code",
		treeDir:     ".claude/skills",
	}}
}

func init() { Register(NewClaude()) }
