package component

import "cavecrawl/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is a grid coordinate. Several entities may share one position,
// e.g. an item lying on a floor tile.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Adjacent reports whether q is one orthogonal step from p.
func (p Position) Adjacent(q Position) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx+dy*dy == 1
}
