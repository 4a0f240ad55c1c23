package generate

import "math/rand"

// Config drives procedural generation for one floor.
type Config struct {
	GridSize    int     // side of the square automaton grid
	AliveChance float64 // probability a seeded cell starts alive
	Iterations  int     // cellular automata steps

	MinCave, MaxCave int // accepted size of the largest cave, inclusive
	ZoneRadius       int
	MinZones         int

	MapPadding int // world map side is GridSize+MapPadding
	MapOffset  int // grid (x,y) lands at world (x+MapOffset, y+MapOffset)

	FloorNumber int
	EnemyCount  int
	ItemCount   int

	// MaxAttempts rejected attempts make one batch. Every batch after the
	// first widens [MinCave, MaxCave] by RelaxStep on each side; Generate
	// gives up after RelaxBatches batches.
	MaxAttempts  int
	RelaxBatches int
	RelaxStep    int

	Rand *rand.Rand
}

const (
	DefaultMaxAttempts  = 200
	DefaultRelaxBatches = 5
	DefaultRelaxStep    = 25
)

// FloorConfig returns the generation parameters for the given 1-based floor.
// Deeper floors accept a wider range of cave sizes and carry more enemies
// and items.
func FloorConfig(floor int, rng *rand.Rand) *Config {
	depth := max(floor, 1) - 1
	return &Config{
		GridSize:     40,
		AliveChance:  0.45,
		Iterations:   2,
		MinCave:      max(120, 200-10*depth),
		MaxCave:      min(900, 400+50*depth),
		ZoneRadius:   10,
		MinZones:     5,
		MapPadding:   20,
		MapOffset:    9,
		FloorNumber:  floor,
		EnemyCount:   2 + floor,
		ItemCount:    1 + floor,
		MaxAttempts:  DefaultMaxAttempts,
		RelaxBatches: DefaultRelaxBatches,
		RelaxStep:    DefaultRelaxStep,
		Rand:         rng,
	}
}
