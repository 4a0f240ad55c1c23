package gamemap

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"testing"
)

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
		if got := m.Tiles.InBounds(c.x, c.y); got != c.want {
			t.Errorf("Tiles.InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestGridGetAndAt(t *testing.T) {
	g := NewGridFilled(3, 2, 7)
	if w, h := g.Size(); w != 3 || h != 2 {
		t.Fatalf("Size()=(%d,%d), want (3,2)", w, h)
	}
	g.Set(2, 1, 9)
	if v, ok := g.Get(2, 1); !ok || v != 9 {
		t.Errorf("Get(2,1)=(%d,%v), want (9,true)", v, ok)
	}
	if _, ok := g.Get(3, 0); ok {
		t.Error("Get outside bounds should report false")
	}
	defer func() {
		if recover() == nil {
			t.Error("At outside bounds should panic")
		}
	}()
	g.At(-1, 0)
}

func TestMoveEntityKeepsOneCell(t *testing.T) {
	m := New(5, 5)
	id := ecs.EntityID(4)
	from := component.Position{X: 1, Y: 1}
	to := component.Position{X: 2, Y: 1}
	m.AddEntity(id, from)
	m.MoveEntity(id, from, to)

	if got := m.Locate(id); len(got) != 1 || got[0] != to {
		t.Errorf("Locate after move = %v, want [%v]", got, to)
	}
	if len(m.EntitiesAt(from)) != 0 {
		t.Error("source cell should be empty after move")
	}
}

func TestMoveEntityPanicsWhenMissing(t *testing.T) {
	m := New(3, 3)
	defer func() {
		if recover() == nil {
			t.Error("moving an entity from a cell it is not in should panic")
		}
	}()
	m.MoveEntity(1, component.Position{}, component.Position{X: 1})
}

func TestRemoveEntity(t *testing.T) {
	m := New(3, 3)
	p := component.Position{X: 1, Y: 2}
	m.AddEntity(1, p)
	m.AddEntity(2, p)
	if !m.RemoveEntity(1, p) {
		t.Fatal("RemoveEntity should report true for present entity")
	}
	if m.RemoveEntity(1, p) {
		t.Error("second RemoveEntity should report false")
	}
	if got := m.EntitiesAt(p); len(got) != 1 || got[0] != 2 {
		t.Errorf("EntitiesAt=%v, want [e2]", got)
	}
}

func TestRecomputeFlagsKeepsExplored(t *testing.T) {
	w := ecs.NewWorld()
	m := New(3, 1)
	wall := w.CreateEntity()
	w.Add(wall, component.BlocksMovement{})
	w.Add(wall, component.BlocksVision{})
	w.Add(wall, component.BlocksPathfinding{})
	orc := w.CreateEntity()
	w.Add(orc, component.BlocksMovement{})

	m.AddEntity(wall, component.Position{X: 0})
	m.AddEntity(orc, component.Position{X: 1})
	m.SetFlags(component.Position{X: 2}, InView|Explored|BlocksVision)

	m.RecomputeFlags(w)

	cases := []struct {
		x    int
		want TileFlags
	}{
		{0, BlocksMovement | BlocksVision | BlocksPathfinding},
		{1, BlocksMovement},
		{2, Explored},
	}
	for _, c := range cases {
		if got := m.Flags(component.Position{X: c.x}); got != c.want {
			t.Errorf("Flags(%d)=%v, want %v", c.x, got, c.want)
		}
	}
}

func TestFlagsOutOfBounds(t *testing.T) {
	m := New(2, 2)
	if f := m.Flags(component.Position{X: 5, Y: 5}); f != 0 {
		t.Errorf("out-of-bounds flags = %v, want 0", f)
	}
	if !(BlocksMovement | InView).Has(InView) {
		t.Error("Has should report a set bit")
	}
}
