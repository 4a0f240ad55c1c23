package gamemap

// TileFlags is the derived per-cell state. Everything except Explored is
// rebuilt from cell occupants every world-update phase.
type TileFlags uint8

const (
	BlocksMovement TileFlags = 1 << iota
	BlocksVision
	InView
	Explored
	BlocksPathfinding
)

// Has reports whether every bit of f is set.
func (t TileFlags) Has(f TileFlags) bool { return t&f == f }

// String lists the set flags, for test failures and debug logs.
func (t TileFlags) String() string {
	names := []string{"BlocksMovement", "BlocksVision", "InView", "Explored", "BlocksPathfinding"}
	s := ""
	for i, n := range names {
		if t&(1<<i) != 0 {
			if s != "" {
				s += "|"
			}
			s += n
		}
	}
	if s == "" {
		return "0"
	}
	return s
}
