package system

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/factory"
	"cavecrawl/internal/gamemap"
	"testing"
)

// buildMap parses rows into tile entities: '#' wall, '>' stairs, anything
// else floor. 'P' also spawns the player and 'o' an orc. Flags are
// recomputed before returning.
func buildMap(t *testing.T, rows ...string) (*ecs.World, *gamemap.WorldMap) {
	t.Helper()
	w := ecs.NewWorld()
	m := gamemap.New(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			p := component.Position{X: x, Y: y}
			kind := component.TileFloor
			switch ch {
			case '#':
				kind = component.TileWall
			case '>':
				kind = component.TileStairsDown
				m.Stairs = p
			}
			m.AddEntity(factory.NewTile(w, kind, p), p)
			switch ch {
			case 'P':
				m.AddEntity(factory.NewPlayer(w, p, nil), p)
			case 'o':
				m.AddEntity(factory.NewOrc(w, p), p)
			}
		}
	}
	m.RecomputeFlags(w)
	return w, m
}

func playerOf(t *testing.T, w *ecs.World) ecs.EntityID {
	t.Helper()
	id, ok := w.Single(component.CTagPlayer)
	if !ok {
		t.Fatal("map has no player")
	}
	return id
}

func positionOf(w *ecs.World, id ecs.EntityID) component.Position {
	return w.MustGet(id, component.CPosition).(component.Position)
}

func healthOf(w *ecs.World, id ecs.EntityID) component.Health {
	return w.MustGet(id, component.CHealth).(component.Health)
}

// checkOccupancy asserts every positioned entity sits in exactly its own cell.
func checkOccupancy(t *testing.T, w *ecs.World, m *gamemap.WorldMap) {
	t.Helper()
	for _, id := range w.Query(component.CPosition) {
		want := positionOf(w, id)
		if got := m.Locate(id); len(got) != 1 || got[0] != want {
			t.Errorf("%v at %v is indexed at %v", id, want, got)
		}
	}
	for _, id := range w.Entities() {
		if !w.Has(id, component.CPosition) && len(m.Locate(id)) != 0 {
			t.Errorf("%v has no position but is on the map", id)
		}
	}
}

type recordingNarrator struct{ lines []string }

func (n *recordingNarrator) Narrate(msg string) { n.lines = append(n.lines, msg) }

type fakeLedger struct {
	slots    []ecs.EntityID
	capacity int
	xp       int
	needed   int
	level    int
}

func (l *fakeLedger) Stash(item ecs.EntityID) bool {
	if len(l.slots) >= l.capacity {
		return false
	}
	l.slots = append(l.slots, item)
	return true
}

func (l *fakeLedger) GrantXP(n int) (int, bool) {
	l.xp += n
	if l.xp < l.needed {
		return l.level, false
	}
	l.xp = 0
	l.needed += 2
	l.level++
	return l.level, true
}
