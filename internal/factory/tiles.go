package factory

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// NewFloor creates a walkable floor tile.
func NewFloor(w *ecs.World, p component.Position) ecs.EntityID {
	return newTile(w, p, component.TileFloor, "·", tcell.ColorGray)
}

// NewWall creates a wall tile: blocks movement, vision and pathfinding.
func NewWall(w *ecs.World, p component.Position) ecs.EntityID {
	id := newTile(w, p, component.TileWall, "🪨", tcell.ColorSilver)
	w.Add(id, component.BlocksMovement{})
	w.Add(id, component.BlocksVision{})
	w.Add(id, component.BlocksPathfinding{})
	return id
}

// NewStairsDown creates the stairs-down tile.
func NewStairsDown(w *ecs.World, p component.Position) ecs.EntityID {
	return newTile(w, p, component.TileStairsDown, "🔽", tcell.ColorWhite)
}

// NewTile dispatches on kind.
func NewTile(w *ecs.World, kind component.TileKind, p component.Position) ecs.EntityID {
	switch kind {
	case component.TileWall:
		return NewWall(w, p)
	case component.TileStairsDown:
		return NewStairsDown(w, p)
	default:
		return NewFloor(w, p)
	}
}

func newTile(w *ecs.World, p component.Position, kind component.TileKind, glyph string, fg tcell.Color) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, p)
	w.Add(id, component.Tile{Kind: kind})
	w.Add(id, component.Renderable{Glyph: glyph, FGColor: fg, RenderOrder: 0})
	return id
}
