package game

import (
	"cavecrawl/internal/generate"
	"math/rand"
)

// levelConfig builds a generate.Config for the given floor. maxAttempts
// overrides the batch size of the generator's retry loop when positive.
func levelConfig(floor int, rng *rand.Rand, maxAttempts int) *generate.Config {
	cfg := generate.FloorConfig(floor, rng)
	if maxAttempts > 0 {
		cfg.MaxAttempts = maxAttempts
	}
	return cfg
}
