package system

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // destination is free
	MoveBlocked                   // wall, occupied cell or out of bounds
	MoveAttack                    // bumped a hostile actor
)

// TryMove checks a one-cell step of id by (dx, dy) against the current
// flags. Players bump enemies and enemies bump the player. It returns the
// destination and, for MoveAttack, the entity bumped. Nothing is mutated.
func TryMove(w *ecs.World, m *gamemap.WorldMap, id ecs.EntityID, dx, dy int) (MoveResult, component.Position, ecs.EntityID) {
	pos, ok := w.Get(id, component.CPosition).(component.Position)
	if !ok {
		return MoveBlocked, component.Position{}, ecs.NilEntity
	}
	dest := pos.Add(dx, dy)
	if !m.InBounds(dest.X, dest.Y) {
		return MoveBlocked, dest, ecs.NilEntity
	}

	hostile := component.CEnemyAI
	if !w.Has(id, component.CTagPlayer) {
		hostile = component.CTagPlayer
	}
	for _, other := range m.EntitiesAt(dest) {
		if other != id && w.Has(other, hostile) && w.Has(other, component.CHealth) {
			return MoveAttack, dest, other
		}
	}

	if m.Flags(dest).Has(gamemap.BlocksMovement) {
		return MoveBlocked, dest, ecs.NilEntity
	}
	return MoveOK, dest, ecs.NilEntity
}

// applyMove relocates the actor. Validity was decided by the intent system.
func (p *Pipeline) applyMove(e Event, q *EventQueue) {
	p.Map.MoveEntity(e.Actor, e.From, e.To)
	p.World.Add(e.Actor, e.To)
	if p.World.Has(e.Actor, component.CTagPlayer) && e.To == p.Map.Stairs {
		q.Push(Descend())
	}
}
