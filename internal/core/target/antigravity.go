package target

// Antigravity installs into the shared tree with a workflow stub under
// .agent/workflows/.
type Antigravity struct {
	BaseTarget
}

// NewAntigravity creates a configured Antigravity target.
func NewAntigravity() *Antigravity {
	return &Antigravity{BaseTarget{
		name:        "antigravity",
		displayName: "Antigravity",
		treeDir:     ".shared",
		pointerDir:  ".agent/workflows",
	}}
}

func init() { Register(NewAntigravity()) }
