package render

import "cavecrawl/internal/component"

// CellWidth is the number of terminal columns one map cell takes. Glyphs are
// emoji, which terminals draw two columns wide.
const CellWidth = 2

// Camera maps grid positions to terminal cells. Width and Height are the
// viewport size in columns and rows.
type Camera struct {
	Origin        component.Position // grid cell drawn at the top-left corner
	Width, Height int
}

// NewCamera creates a camera of the given viewport size centred on c.
func NewCamera(c component.Position, width, height int) *Camera {
	cam := &Camera{Width: width, Height: height}
	cam.Center(c)
	return cam
}

// Resize changes the viewport, keeping the current centre.
func (c *Camera) Resize(width, height int) {
	centre := c.Origin.Add(c.Width/CellWidth/2, c.Height/2)
	c.Width, c.Height = width, height
	c.Center(centre)
}

// Center moves the viewport so that p is in its middle.
func (c *Camera) Center(p component.Position) {
	c.Origin = p.Add(-c.Width/CellWidth/2, -c.Height/2)
}

// WorldToScreen returns the terminal cell of p and whether it is inside the
// viewport.
func (c *Camera) WorldToScreen(p component.Position) (sx, sy int, ok bool) {
	sx = (p.X - c.Origin.X) * CellWidth
	sy = p.Y - c.Origin.Y
	ok = sx >= 0 && sx+CellWidth <= c.Width && sy >= 0 && sy < c.Height
	return sx, sy, ok
}

// ScreenToWorld is the inverse of WorldToScreen; both columns of a cell map
// to the same position.
func (c *Camera) ScreenToWorld(sx, sy int) component.Position {
	return c.Origin.Add(floorDiv(sx, CellWidth), sy)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) != (b < 0) {
		q--
	}
	return q
}
