package gamemap

import "fmt"

// Grid is a fixed-size 2D array addressed by (x, y).
// Bounds are guaranteed by generation, so At panics outside them while Get
// reports absence.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// NewGrid allocates a width×height grid of zero values.
func NewGrid[T any](width, height int) Grid[T] {
	return Grid[T]{width: width, height: height, cells: make([]T, width*height)}
}

// NewGridFilled allocates a grid with every cell set to v.
func NewGridFilled[T any](width, height int, v T) Grid[T] {
	g := NewGrid[T](width, height)
	for i := range g.cells {
		g.cells[i] = v
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() (int, int) { return g.width, g.height }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell value and whether (x, y) is in bounds.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y*g.width+x], true
}

// At returns a pointer to the cell at (x, y). Panics if out of bounds.
func (g *Grid[T]) At(x, y int) *T {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return &g.cells[y*g.width+x]
}

// Set replaces the cell at (x, y). Panics if out of bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	*g.At(x, y) = v
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(x, y int, v *T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, &g.cells[y*g.width+x])
		}
	}
}
