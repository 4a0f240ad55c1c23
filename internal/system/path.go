package system

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/gamemap"
	"math"
	"slices"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Edge costs for stepping into a cell.
const (
	StepCost    = 1
	BlockedCost = 5 // occupied by something that may move away
)

// Path is an A* result. Steps starts with the start cell and ends with the goal.
type Path struct {
	Steps []component.Position
	Cost  int
}

// Next returns the first step after the start, if any.
func (p Path) Next() (component.Position, bool) {
	if len(p.Steps) < 2 {
		return component.Position{}, false
	}
	return p.Steps[1], true
}

type openNode struct {
	pos component.Position
	f   int
	seq int
}

// FindPath runs 4-directional A* from start to goal. Cells flagged
// BlocksPathfinding have no incoming edges; cells flagged BlocksMovement cost
// BlockedCost to enter. Ties on f are broken by insertion order, so equal
// inputs always return the same path.
func FindPath(m *gamemap.WorldMap, start, goal component.Position) (Path, bool) {
	if !m.InBounds(start.X, start.Y) || !m.InBounds(goal.X, goal.Y) {
		return Path{}, false
	}

	open := heap.New[openNode](func(a, b openNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})
	closed := mapset.New[component.Position]()
	g := map[component.Position]int{start: 0}
	from := map[component.Position]component.Position{}
	seq := 0
	open.Push(openNode{pos: start, f: heuristic(start, goal), seq: seq})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if cur.pos == goal {
			return Path{Steps: rebuild(from, start, goal), Cost: g[goal]}, true
		}
		if closed.Has(cur.pos) {
			continue
		}
		closed.Put(cur.pos)

		for _, d := range directions {
			n := cur.pos.Add(d[0], d[1])
			cost, ok := edgeCost(m, n)
			if !ok || closed.Has(n) {
				continue
			}
			tentative := g[cur.pos] + cost
			if old, seen := g[n]; seen && tentative >= old {
				continue
			}
			g[n] = tentative
			from[n] = cur.pos
			seq++
			open.Push(openNode{pos: n, f: tentative + heuristic(n, goal), seq: seq})
		}
	}
	return Path{}, false
}

// directions are the four orthogonal moves in a fixed order.
var directions = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func edgeCost(m *gamemap.WorldMap, p component.Position) (int, bool) {
	f, ok := m.Tiles.Get(p.X, p.Y)
	switch {
	case !ok || f.Has(gamemap.BlocksPathfinding):
		return 0, false
	case f.Has(gamemap.BlocksMovement):
		return BlockedCost, true
	default:
		return StepCost, true
	}
}

// heuristic is the Euclidean distance rounded down.
func heuristic(a, b component.Position) int {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}

func rebuild(from map[component.Position]component.Position, start, goal component.Position) []component.Position {
	steps := []component.Position{goal}
	for p := goal; p != start; {
		p = from[p]
		steps = append(steps, p)
	}
	slices.Reverse(steps)
	return steps
}
