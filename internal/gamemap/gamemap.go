package gamemap

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"fmt"
	"slices"
)

// WorldMap holds who occupies each cell and what each cell permits for one
// dungeon floor.
type WorldMap struct {
	Width, Height int
	Entities      Grid[[]ecs.EntityID]
	Tiles         Grid[TileFlags]
	Stairs        component.Position
}

// New creates an empty map.
func New(width, height int) *WorldMap {
	return &WorldMap{
		Width:    width,
		Height:   height,
		Entities: NewGrid[[]ecs.EntityID](width, height),
		Tiles:    NewGrid[TileFlags](width, height),
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *WorldMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// EntitiesAt returns a copy of the occupant list of p (nil out of bounds).
func (m *WorldMap) EntitiesAt(p component.Position) []ecs.EntityID {
	ids, ok := m.Entities.Get(p.X, p.Y)
	if !ok {
		return nil
	}
	return slices.Clone(ids)
}

// Flags returns the flags of p; out-of-bounds cells report zero flags.
func (m *WorldMap) Flags(p component.Position) TileFlags {
	f, _ := m.Tiles.Get(p.X, p.Y)
	return f
}

// SetFlags ORs f into the cell at p. Panics if p is out of bounds.
func (m *WorldMap) SetFlags(p component.Position, f TileFlags) {
	*m.Tiles.At(p.X, p.Y) |= f
}

// AddEntity appends id to the occupant list of p.
func (m *WorldMap) AddEntity(id ecs.EntityID, p component.Position) {
	cell := m.Entities.At(p.X, p.Y)
	*cell = append(*cell, id)
}

// RemoveEntity drops id from the occupant list of p and reports whether it
// was there.
func (m *WorldMap) RemoveEntity(id ecs.EntityID, p component.Position) bool {
	cell, ok := m.Entities.Get(p.X, p.Y)
	if !ok {
		return false
	}
	i := slices.Index(cell, id)
	if i < 0 {
		return false
	}
	*m.Entities.At(p.X, p.Y) = slices.Delete(cell, i, i+1)
	return true
}

// MoveEntity relocates id from one occupant list to another. The entity not
// being at from is a bookkeeping bug and panics.
func (m *WorldMap) MoveEntity(id ecs.EntityID, from, to component.Position) {
	if !m.RemoveEntity(id, from) {
		panic(fmt.Sprintf("gamemap: %v is not at %v", id, from))
	}
	m.AddEntity(id, to)
}

// Locate scans the whole map for id. Only tests and invariant checks use it.
func (m *WorldMap) Locate(id ecs.EntityID) []component.Position {
	var found []component.Position
	m.Entities.Each(func(x, y int, ids *[]ecs.EntityID) {
		for _, e := range *ids {
			if e == id {
				found = append(found, component.Position{X: x, Y: y})
			}
		}
	})
	return found
}

// RecomputeFlags rebuilds the blocking flags of every cell from its occupants
// and clears InView. Explored is the only flag that survives.
func (m *WorldMap) RecomputeFlags(w *ecs.World) {
	m.Tiles.Each(func(x, y int, f *TileFlags) {
		*f &= Explored
		for _, id := range *m.Entities.At(x, y) {
			if w.Has(id, component.CBlocksMovement) {
				*f |= BlocksMovement
			}
			if w.Has(id, component.CBlocksVision) {
				*f |= BlocksVision
			}
			if w.Has(id, component.CBlocksPathfinding) {
				*f |= BlocksPathfinding
			}
		}
	})
}

// FirstWith returns the first occupant of p carrying component t.
func (m *WorldMap) FirstWith(w *ecs.World, p component.Position, t ecs.ComponentType) (ecs.EntityID, bool) {
	ids, ok := m.Entities.Get(p.X, p.Y)
	if !ok {
		return ecs.NilEntity, false
	}
	for _, id := range ids {
		if w.Has(id, t) {
			return id, true
		}
	}
	return ecs.NilEntity, false
}
