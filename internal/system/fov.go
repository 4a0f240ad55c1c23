package system

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/gamemap"
)

// FOVRadius is the radius of the player's sight circle.
const FOVRadius = 4

// UpdateFOV clears InView and casts rays from the player to every point of
// the sight perimeter. Cells a ray crosses become InView; every InView cell
// becomes Explored. Without a positioned player nothing is marked.
func UpdateFOV(w *ecs.World, m *gamemap.WorldMap, player ecs.EntityID) {
	m.Tiles.Each(func(_, _ int, f *gamemap.TileFlags) { *f &^= gamemap.InView })

	pc, ok := w.Get(player, component.CPosition).(component.Position)
	if !ok {
		return
	}
	for _, end := range fovCircle(pc, FOVRadius) {
		castRay(m, pc, end)
	}

	m.Tiles.Each(func(_, _ int, f *gamemap.TileFlags) {
		if f.Has(gamemap.InView) {
			*f |= gamemap.Explored
		}
	})
}

// castRay walks the Bresenham line from origin to end.
func castRay(m *gamemap.WorldMap, origin, end component.Position) {
	var prev component.Position
	started := false
	for _, p := range line(origin, end) {
		flags, ok := m.Tiles.Get(p.X, p.Y)
		if !ok {
			continue
		}
		// A diagonal step between two vision blockers is a closed corner.
		if started {
			a := m.Flags(component.Position{X: prev.X, Y: p.Y})
			b := m.Flags(component.Position{X: p.X, Y: prev.Y})
			if (a & b).Has(gamemap.BlocksVision) {
				return
			}
		}
		prev, started = p, true

		m.SetFlags(p, gamemap.InView)

		if flags.Has(gamemap.BlocksVision) {
			return
		}
		// Light the blockers just outward of an open cell so wall edges
		// along the ray are not left ragged.
		for _, n := range []component.Position{
			p.Add(sign(p.X-origin.X), 0),
			p.Add(0, sign(p.Y-origin.Y)),
		} {
			if nf, ok := m.Tiles.Get(n.X, n.Y); ok && nf.Has(gamemap.BlocksVision) {
				m.SetFlags(n, gamemap.InView)
			}
		}
	}
}

// fovCircle lists the ray targets: the square perimeter at radius r plus a
// half-width ring at r+1 that rounds off the corners.
func fovCircle(c component.Position, r int) []component.Position {
	points := make([]component.Position, 0, 8*(r+1)+8*(r/2+1))
	ring := func(d, off int) {
		points = append(points,
			c.Add(off, d), c.Add(-off, d),
			c.Add(off, -d), c.Add(-off, -d),
			c.Add(d, off), c.Add(-d, off),
			c.Add(d, -off), c.Add(-d, -off),
		)
	}
	for off := 0; off <= r; off++ {
		ring(r, off)
	}
	for off := 0; off <= r/2; off++ {
		ring(r+1, off)
	}
	return points
}

// line returns the Bresenham rasterization from a to b, both ends included.
func line(a, b component.Position) []component.Position {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx + dy

	pts := []component.Position{a}
	for p := a; p != b; {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
		pts = append(pts, p)
	}
	return pts
}

// VisibilityState is what the presentation layer should show for an entity.
type VisibilityState uint8

const (
	Hidden VisibilityState = iota
	Remembered
	Shown
)

// Visibility derives an entity's display state from its cell: tiles are
// shown once explored and dimmed while out of view; everything else is shown
// only while in view.
func Visibility(w *ecs.World, m *gamemap.WorldMap, id ecs.EntityID) VisibilityState {
	p, ok := w.Get(id, component.CPosition).(component.Position)
	if !ok {
		return Hidden
	}
	f := m.Flags(p)
	switch {
	case f.Has(gamemap.InView):
		return Shown
	case w.Has(id, component.CTile) && f.Has(gamemap.Explored):
		return Remembered
	default:
		return Hidden
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
