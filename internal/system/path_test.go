package system

import (
	"cavecrawl/internal/component"
	"reflect"
	"testing"
)

func TestFindPathStraightCorridor(t *testing.T) {
	_, m := buildMap(t,
		"#######",
		"#.....#",
		"#######",
	)
	path, ok := FindPath(m, component.Position{X: 1, Y: 1}, component.Position{X: 5, Y: 1})
	if !ok {
		t.Fatal("expected a path")
	}
	if path.Cost != 4 || len(path.Steps) != 5 {
		t.Errorf("cost=%d steps=%d, want 4 and 5", path.Cost, len(path.Steps))
	}
	if next, _ := path.Next(); next != (component.Position{X: 2, Y: 1}) {
		t.Errorf("Next()=%v, want (2,1)", next)
	}
}

func TestFindPathOccupiedCellCostsMore(t *testing.T) {
	_, m := buildMap(t,
		"#######",
		"#..o..#",
		"#######",
	)
	path, ok := FindPath(m, component.Position{X: 1, Y: 1}, component.Position{X: 5, Y: 1})
	if !ok {
		t.Fatal("an occupant must not remove the edge")
	}
	if want := 3*StepCost + BlockedCost; path.Cost != want {
		t.Errorf("cost=%d, want %d", path.Cost, want)
	}
}

func TestFindPathDetoursAroundOccupant(t *testing.T) {
	_, m := buildMap(t,
		"#######",
		"#.....#",
		"#..o..#",
		"#.....#",
		"#######",
	)
	path, ok := FindPath(m, component.Position{X: 1, Y: 2}, component.Position{X: 5, Y: 2})
	if !ok {
		t.Fatal("expected a path")
	}
	for _, s := range path.Steps {
		if s == (component.Position{X: 3, Y: 2}) {
			t.Errorf("path %v walks through the orc although a detour is cheaper", path.Steps)
		}
	}
	if path.Cost != 6 {
		t.Errorf("cost=%d, want 6", path.Cost)
	}
}

func TestFindPathWalledOff(t *testing.T) {
	_, m := buildMap(t,
		"#####",
		"#.#.#",
		"#####",
	)
	if _, ok := FindPath(m, component.Position{X: 1, Y: 1}, component.Position{X: 3, Y: 1}); ok {
		t.Error("walls must have no incoming edges")
	}
}

func TestFindPathDeterministic(t *testing.T) {
	_, m := buildMap(t,
		"##########",
		"#........#",
		"#.##.##..#",
		"#........#",
		"#..#..#..#",
		"#........#",
		"##########",
	)
	start, goal := component.Position{X: 1, Y: 1}, component.Position{X: 8, Y: 5}
	first, ok := FindPath(m, start, goal)
	if !ok {
		t.Fatal("expected a path")
	}
	for range 10 {
		again, _ := FindPath(m, start, goal)
		if again.Cost != first.Cost || !reflect.DeepEqual(again.Steps, first.Steps) {
			t.Fatalf("path changed between calls: %v vs %v", first.Steps, again.Steps)
		}
	}
	if first.Steps[0] != start || first.Steps[len(first.Steps)-1] != goal {
		t.Errorf("path %v does not span start..goal", first.Steps)
	}
	if first.Cost != 11 {
		t.Errorf("cost=%d, want Manhattan distance 11", first.Cost)
	}
}

func TestFindPathStartIsGoal(t *testing.T) {
	_, m := buildMap(t, "...")
	p := component.Position{X: 1}
	path, ok := FindPath(m, p, p)
	if !ok || path.Cost != 0 || len(path.Steps) != 1 {
		t.Errorf("got %+v, %v", path, ok)
	}
	if _, ok := path.Next(); ok {
		t.Error("a one-cell path has no next step")
	}
}
