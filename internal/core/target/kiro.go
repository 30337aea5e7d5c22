package target

// Kiro installs into the shared tree with a steering stub under
// .kiro/steering/.
type Kiro struct {
	BaseTarget
}

// NewKiro creates a configured Kiro target.
func NewKiro() *Kiro {
	return &Kiro{BaseTarget{
		name:        "kiro",
		displayName: "Kiro",
		treeDir:     ".shared",
		pointerDir:  ".kiro/steering",
	}}
}

func init() { Register(NewKiro()) }
