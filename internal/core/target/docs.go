package target

// Docs installs into a plain docs/ tree for hosts (and humans) that read
// project documentation directly.
type Docs struct {
	BaseTarget
}

// NewDocs creates a configured docs target.
func NewDocs() *Docs {
	return &Docs{BaseTarget{
		name:        "docs",
		displayName: "Docs",
		treeDir:     "docs",
	}}
}

func init() { Register(NewDocs()) }
