package render

import "cavecrawl/internal/component"

// Theme holds the glyphs used to draw one band of cave floors. Terminals
// draw emoji in their own colours, so remembered cells use separate dim
// glyphs instead of a tinted foreground.
type Theme struct {
	Name     string
	Wall     string
	Floor    string
	DimWall  string
	DimFloor string
	Stairs   string
}

// Themes is indexed by depth band; floors past the last band reuse it.
var Themes = []Theme{
	{
		// Upper caves: bare rock
		Name:     "The Upper Caves",
		Wall:     "🪨",
		Floor:    "🟫",
		DimWall:  "🌑",
		DimFloor: "🔲",
		Stairs:   "🔽",
	},
	{
		// Fungal grottoes
		Name:     "The Fungal Grottoes",
		Wall:     "🍄",
		Floor:    "🌿",
		DimWall:  "🌑",
		DimFloor: "🔲",
		Stairs:   "🔽",
	},
	{
		// Flooded depths
		Name:     "The Drowned Halls",
		Wall:     "🧊",
		Floor:    "🌊",
		DimWall:  "🌑",
		DimFloor: "🔲",
		Stairs:   "🔽",
	},
	{
		// Deepest band: magma
		Name:     "The Burning Deep",
		Wall:     "🌋",
		Floor:    "🔴",
		DimWall:  "🌑",
		DimFloor: "🔲",
		Stairs:   "🔽",
	},
}

// FloorsPerTheme is how many consecutive floors share a theme.
const FloorsPerTheme = 3

// ThemeFor returns the theme of a 1-based floor number.
func ThemeFor(floor int) Theme {
	i := max(floor-1, 0) / FloorsPerTheme
	return Themes[min(i, len(Themes)-1)]
}

// TileGlyph picks the glyph of a terrain tile; dim selects the remembered
// variant.
func (t Theme) TileGlyph(kind component.TileKind, dim bool) string {
	switch kind {
	case component.TileWall:
		if dim {
			return t.DimWall
		}
		return t.Wall
	case component.TileStairsDown:
		return t.Stairs
	default:
		if dim {
			return t.DimFloor
		}
		return t.Floor
	}
}
