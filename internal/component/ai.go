package component

import "cavecrawl/internal/ecs"

const CEnemyAI ecs.ComponentType = 5

// EnemyAI marks an AI-controlled actor.
type EnemyAI struct {
	SightRange int
	Damage     int
}

func (EnemyAI) Type() ecs.ComponentType { return CEnemyAI }
