package component

import "cavecrawl/internal/ecs"

const CParalyzed ecs.ComponentType = 6

// Paralyzed bars an actor from voluntary actions. The counter drops by one
// each turn the actor would have acted.
type Paralyzed struct {
	TurnsRemaining int
}

func (Paralyzed) Type() ecs.ComponentType { return CParalyzed }
