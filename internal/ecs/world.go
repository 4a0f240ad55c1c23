package ecs

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// table is the sparse store of one component type.
type table map[EntityID]Component

// World is the entity registry. Components live in one sparse table per
// ComponentType. It is not safe for concurrent use; the simulation owns it
// from one goroutine.
type World struct {
	nextID EntityID
	alive  mapset.Set[EntityID]
	tables map[ComponentType]table
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  mapset.New[EntityID](),
		tables: make(map[ComponentType]table),
	}
}

// CreateEntity mints a fresh id. Ids are never reused.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive.Put(id)
	return id
}

// DestroyEntity forgets id and every component attached to it. It reports
// whether the entity was alive; destroying twice is a no-op.
func (w *World) DestroyEntity(id EntityID) bool {
	if !w.alive.Has(id) {
		return false
	}
	w.alive.Remove(id)
	for _, tb := range w.tables {
		delete(tb, id)
	}
	return true
}

// Alive reports whether id has been created and not yet destroyed.
func (w *World) Alive(id EntityID) bool { return w.alive.Has(id) }

// Count returns the number of live entities.
func (w *World) Count() int { return w.alive.Size() }

// Entities returns every live entity in ascending id order.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, w.alive.Size())
	w.alive.Each(func(id EntityID) { ids = append(ids, id) })
	slices.Sort(ids)
	return ids
}

// Add stores c on id, replacing a component of the same type.
func (w *World) Add(id EntityID, c Component) {
	tb := w.tables[c.Type()]
	if tb == nil {
		tb = make(table)
		w.tables[c.Type()] = tb
	}
	tb[id] = c
}

// Get returns id's component of type t, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.tables[t][id]
}

// MustGet is Get for components the caller's invariants guarantee exist.
// A missing component means map/entity bookkeeping is broken, so it panics.
func (w *World) MustGet(id EntityID, t ComponentType) Component {
	c := w.Get(id, t)
	if c == nil {
		panic(fmt.Sprintf("ecs: entity %v has no component %d (alive=%v)", id, t, w.Alive(id)))
	}
	return c
}

// Remove drops id's component of type t, if any.
func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.tables[t], id)
}

// Has reports whether id carries a component of type t.
func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.tables[t][id]
	return ok
}

// Query returns the live entities carrying every listed type, in ascending
// id order so systems iterate deterministically. The scan starts from the
// smallest table.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	rest := slices.Clone(types)
	slices.SortFunc(rest, func(a, b ComponentType) int {
		return len(w.tables[a]) - len(w.tables[b])
	})

	var result []EntityID
	for id := range w.tables[rest[0]] {
		if w.alive.Has(id) && w.hasAll(id, rest[1:]) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func (w *World) hasAll(id EntityID, types []ComponentType) bool {
	for _, t := range types {
		if !w.Has(id, t) {
			return false
		}
	}
	return true
}

// Single returns the only live entity carrying t. found is false when there
// is none; more than one is a broken invariant and panics.
func (w *World) Single(t ComponentType) (id EntityID, found bool) {
	ids := w.Query(t)
	switch len(ids) {
	case 0:
		return NilEntity, false
	case 1:
		return ids[0], true
	default:
		panic(fmt.Sprintf("ecs: expected at most one entity with component %d, found %d", t, len(ids)))
	}
}
