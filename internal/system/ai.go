package system

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/gamemap"
)

// EnemyTurn decides the single event an enemy emits on its turn. A paralyzed
// enemy waits. Otherwise it attacks an adjacent player, follows the A* path
// toward a player within sight, and waits when the next step is taken.
func EnemyTurn(w *ecs.World, m *gamemap.WorldMap, id ecs.EntityID) Event {
	if TickParalysis(w, id) {
		return Wait(id)
	}
	ai, ok := w.Get(id, component.CEnemyAI).(component.EnemyAI)
	if !ok {
		return Wait(id)
	}
	pos, ok := w.Get(id, component.CPosition).(component.Position)
	if !ok {
		return Wait(id)
	}
	player, found := w.Single(component.CTagPlayer)
	if !found {
		return Wait(id)
	}
	target, ok := w.Get(player, component.CPosition).(component.Position)
	if !ok {
		return Wait(id)
	}

	if pos.Adjacent(target) {
		return Attack(id, player, ai.Damage)
	}
	dx, dy := target.X-pos.X, target.Y-pos.Y
	if dx*dx+dy*dy > ai.SightRange*ai.SightRange {
		return Wait(id)
	}
	path, ok := FindPath(m, pos, target)
	if !ok {
		return Wait(id)
	}
	next, ok := path.Next()
	if !ok || m.Flags(next).Has(gamemap.BlocksMovement) {
		return Wait(id)
	}
	return Move(id, pos, next)
}
