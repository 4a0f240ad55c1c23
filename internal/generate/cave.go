package generate

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/gamemap"
	"cavecrawl/internal/telemetry"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrNoConvergence is returned when no attempt produced an acceptable cave.
var ErrNoConvergence = errors.New("cave generation did not converge")

// NoZone marks a grid cell outside the kept cave.
const NoZone = -1

// Layout is an accepted cave: the largest connected component of the
// automaton, partitioned into zones.
type Layout struct {
	Size      int
	Zones     gamemap.Grid[int] // zone index per cell, NoZone when dead
	ZoneCount int
	CaveSize  int

	Attempts         int
	MinCave, MaxCave int // range in force when the attempt was accepted
	Relaxed          bool
}

// Alive reports whether (x, y) is part of the kept cave.
func (l *Layout) Alive(x, y int) bool {
	z, ok := l.Zones.Get(x, y)
	return ok && z != NoZone
}

// ZoneSizes returns the number of cells in each zone.
func (l *Layout) ZoneSizes() []int {
	sizes := make([]int, l.ZoneCount)
	l.Zones.Each(func(_, _ int, z *int) {
		if *z != NoZone {
			sizes[*z]++
		}
	})
	return sizes
}

// orthogonal is the 4-connected neighbourhood in scan order.
var orthogonal = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Generate runs cellular automata attempts until one yields a largest cave
// within the configured size range that splits into enough zones.
func Generate(ctx context.Context, cfg *Config) (*Layout, error) {
	ctx, span := telemetry.Tracer("generate").Start(ctx, "cave.generate")
	defer span.End()
	start := time.Now()

	batch := max(cfg.MaxAttempts, 1)
	limit := batch * max(cfg.RelaxBatches, 1)
	lo, hi := cfg.MinCave, cfg.MaxCave

	for attempt := 1; attempt <= limit; attempt++ {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("generate floor %d: %w", cfg.FloorNumber, err)
		}
		if attempt > batch && (attempt-1)%batch == 0 {
			lo = max(lo-cfg.RelaxStep, 1)
			hi += cfg.RelaxStep
		}

		alive := randomFill(cfg)
		for range cfg.Iterations {
			alive = automatonStep(alive)
		}

		cave := largestCave(alive)
		if len(cave) < lo || len(cave) > hi {
			continue
		}
		layout := splitIntoZones(cfg.GridSize, cave, cfg.ZoneRadius)
		if layout.ZoneCount < cfg.MinZones {
			continue
		}

		layout.Attempts = attempt
		layout.MinCave, layout.MaxCave = lo, hi
		layout.Relaxed = attempt > batch
		span.SetAttributes(
			attribute.Int("cave.floor", cfg.FloorNumber),
			attribute.Int("cave.attempts", attempt),
			attribute.Int("cave.size", layout.CaveSize),
			attribute.Int("cave.zones", layout.ZoneCount),
			attribute.Bool("cave.relaxed", layout.Relaxed),
			attribute.Int64("cave.generation_ms", time.Since(start).Milliseconds()),
		)
		return layout, nil
	}

	err := fmt.Errorf("generate floor %d after %d attempts: %w", cfg.FloorNumber, limit, ErrNoConvergence)
	span.SetStatus(codes.Error, err.Error())
	return nil, err
}

// randomFill seeds the grid interior, leaving a two-cell dead border.
func randomFill(cfg *Config) gamemap.Grid[bool] {
	g := gamemap.NewGrid[bool](cfg.GridSize, cfg.GridSize)
	for x := 2; x < cfg.GridSize-2; x++ {
		for y := 2; y < cfg.GridSize-2; y++ {
			if cfg.Rand.Float64() < cfg.AliveChance {
				g.Set(x, y, true)
			}
		}
	}
	return g
}

// automatonStep applies the 4-5 rule: a dead cell with more than four live
// Moore neighbours is born, a live cell with fewer than three dies.
func automatonStep(cur gamemap.Grid[bool]) gamemap.Grid[bool] {
	w, h := cur.Size()
	next := gamemap.NewGrid[bool](w, h)
	for x := 2; x < w-2; x++ {
		for y := 2; y < h-2; y++ {
			n := liveNeighbours(cur, x, y)
			if *cur.At(x, y) {
				next.Set(x, y, n >= 3)
			} else {
				next.Set(x, y, n > 4)
			}
		}
	}
	return next
}

func liveNeighbours(g gamemap.Grid[bool], x, y int) int {
	n := 0
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if i == 0 && j == 0 {
				continue
			}
			if v, ok := g.Get(x+i, y+j); ok && v {
				n++
			}
		}
	}
	return n
}

// floodFill collects the cells reachable from start through open cells with
// 4-connected steps. A negative radius means unbounded; otherwise cells more
// than radius steps away are left out.
func floodFill(start component.Position, radius int, open func(component.Position) bool) []component.Position {
	type frontier struct {
		pos  component.Position
		dist int
	}
	seen := mapset.New[component.Position]()
	q := queue.New[frontier]()
	seen.Put(start)
	q.Enqueue(frontier{start, 0})

	var cells []component.Position
	for !q.Empty() {
		f := q.Dequeue()
		cells = append(cells, f.pos)
		if radius >= 0 && f.dist >= radius {
			continue
		}
		for _, d := range orthogonal {
			n := f.pos.Add(d[0], d[1])
			if seen.Has(n) || !open(n) {
				continue
			}
			seen.Put(n)
			q.Enqueue(frontier{n, f.dist + 1})
		}
	}
	return cells
}

// largestCave returns the cells of the biggest 4-connected live component.
// Components are discovered in column-major scan order and the first one
// found wins ties.
func largestCave(alive gamemap.Grid[bool]) []component.Position {
	w, h := alive.Size()
	labelled := gamemap.NewGrid[bool](w, h)
	open := func(p component.Position) bool {
		a, ok := alive.Get(p.X, p.Y)
		return ok && a && !*labelled.At(p.X, p.Y)
	}

	var best []component.Position
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			p := component.Position{X: x, Y: y}
			if !open(p) {
				continue
			}
			cave := floodFill(p, -1, open)
			for _, c := range cave {
				labelled.Set(c.X, c.Y, true)
			}
			if len(cave) > len(best) {
				best = cave
			}
		}
	}
	return best
}

// splitIntoZones partitions the cave into regions reachable within radius
// steps of a seed cell. Seeds are taken in column-major scan order, so zone 0
// holds the first cave cell of the grid.
func splitIntoZones(size int, cave []component.Position, radius int) *Layout {
	zones := gamemap.NewGridFilled(size, size, NoZone)
	inCave := gamemap.NewGrid[bool](size, size)
	for _, c := range cave {
		inCave.Set(c.X, c.Y, true)
	}
	open := func(p component.Position) bool {
		in, ok := inCave.Get(p.X, p.Y)
		return ok && in && *zones.At(p.X, p.Y) == NoZone
	}

	count := 0
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			p := component.Position{X: x, Y: y}
			if !open(p) {
				continue
			}
			for _, c := range floodFill(p, radius, open) {
				zones.Set(c.X, c.Y, count)
			}
			count++
		}
	}
	return &Layout{Size: size, Zones: zones, ZoneCount: count, CaveSize: len(cave)}
}
