package generate

import "cavecrawl/internal/component"

// SpawnKind identifies what a zone-allocated spawn will become.
type SpawnKind uint8

const (
	SpawnPlayer SpawnKind = iota
	SpawnEnemy
	SpawnItem
)

// Spawn describes one entity to create at a world position.
type Spawn struct {
	Kind SpawnKind
	Item component.ItemKind // meaningful for SpawnItem only
	Pos  component.Position
}

// TileSpawn describes one terrain entity to create.
type TileSpawn struct {
	Kind component.TileKind
	Pos  component.Position
}

// PopulateResult is returned by Populate with everything the factory needs
// to materialize a floor. Positions are world coordinates.
type PopulateResult struct {
	MapSize   int
	Stairs    component.Position
	Tiles     []TileSpawn
	Spawns    []Spawn
	Discarded int // allocated entities that found no free cell in their zone
}

// Player returns the player spawn, if one was placed.
func (r PopulateResult) Player() (component.Position, bool) {
	for _, s := range r.Spawns {
		if s.Kind == SpawnPlayer {
			return s.Pos, true
		}
	}
	return component.Position{}, false
}

// Count returns how many spawns of the given kind were placed.
func (r PopulateResult) Count(kind SpawnKind) int {
	n := 0
	for _, s := range r.Spawns {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Populate allocates the player to zone 0 and scatters enemies and items over
// random non-zero zones, then walks the grid placing at most one allocated
// entity per floor cell. It also picks the stairs and classifies walls: dead
// cells with a live Moore neighbour.
func Populate(layout *Layout, cfg *Config) PopulateResult {
	result := PopulateResult{MapSize: layout.Size + cfg.MapPadding}
	world := func(x, y int) component.Position {
		return component.Position{X: x + cfg.MapOffset, Y: y + cfg.MapOffset}
	}

	// Each zone is a stack; the last allocated spawn is placed first.
	pending := make([][]Spawn, layout.ZoneCount)
	pending[0] = append(pending[0], Spawn{Kind: SpawnPlayer})
	if layout.ZoneCount > 1 {
		for range cfg.EnemyCount {
			z := 1 + cfg.Rand.Intn(layout.ZoneCount-1)
			pending[z] = append(pending[z], Spawn{Kind: SpawnEnemy})
		}
		for range cfg.ItemCount {
			z := 1 + cfg.Rand.Intn(layout.ZoneCount-1)
			kind := component.ItemKinds[cfg.Rand.Intn(len(component.ItemKinds))]
			pending[z] = append(pending[z], Spawn{Kind: SpawnItem, Item: kind})
		}
	}

	sx, sy := pickStairs(layout, cfg)
	result.Stairs = world(sx, sy)

	for x := 1; x < layout.Size-1; x++ {
		for y := 1; y < layout.Size-1; y++ {
			pos := world(x, y)
			switch {
			case x == sx && y == sy:
				result.Tiles = append(result.Tiles, TileSpawn{Kind: component.TileStairsDown, Pos: pos})
			case layout.Alive(x, y):
				result.Tiles = append(result.Tiles, TileSpawn{Kind: component.TileFloor, Pos: pos})
				z := *layout.Zones.At(x, y)
				if n := len(pending[z]); n > 0 {
					s := pending[z][n-1]
					pending[z] = pending[z][:n-1]
					s.Pos = pos
					result.Spawns = append(result.Spawns, s)
				}
			case touchesCave(layout, x, y):
				result.Tiles = append(result.Tiles, TileSpawn{Kind: component.TileWall, Pos: pos})
			}
		}
	}

	for _, p := range pending {
		result.Discarded += len(p)
	}
	return result
}

// pickStairs draws random interior cells until one lies in the cave outside
// the starting zone, so the player never spawns on the stairs.
func pickStairs(layout *Layout, cfg *Config) (int, int) {
	if layout.ZoneCount < 2 {
		return lastCaveCell(layout)
	}
	span := layout.Size - 3
	for {
		x, y := 1+cfg.Rand.Intn(span), 1+cfg.Rand.Intn(span)
		if z, ok := layout.Zones.Get(x, y); ok && z > 0 {
			return x, y
		}
	}
}

// lastCaveCell returns the last cave cell in scan order. Single-zone
// layouts use it for the stairs since there is no other zone to draw from.
func lastCaveCell(layout *Layout) (int, int) {
	for x := layout.Size - 1; x >= 0; x-- {
		for y := layout.Size - 1; y >= 0; y-- {
			if layout.Alive(x, y) {
				return x, y
			}
		}
	}
	return 0, 0
}

func touchesCave(layout *Layout, x, y int) bool {
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if layout.Alive(x+i, y+j) {
				return true
			}
		}
	}
	return false
}
