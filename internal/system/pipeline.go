package system

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/gamemap"
	"log/slog"

	"github.com/leonelquinteros/gotext"
)

// Narrator receives player-facing log lines.
type Narrator interface {
	Narrate(msg string)
}

// Ledger is the game-wide bookkeeping the pipeline updates for the player.
type Ledger interface {
	// Stash puts item into the first empty inventory slot. It reports false
	// when every slot is taken.
	Stash(item ecs.EntityID) bool
	// GrantXP adds experience and reports the new level on a level-up.
	GrantXP(n int) (level int, leveled bool)
}

// Outcome summarizes one drain.
type Outcome struct {
	Applied int // events whose effects were applied
	Skipped int // events on despawned entities or with nothing to act on
	Descend bool
	Quit    bool
}

// Pipeline applies events to the world. It is the only writer of entity
// state during the turn phase.
type Pipeline struct {
	World    *ecs.World
	Map      *gamemap.WorldMap
	Order    *InitiativeOrder
	Ledger   Ledger
	Narrator Narrator
	Logger   *slog.Logger
}

// Drain applies queued events until the queue is empty, including any
// follow-ups pushed by handlers.
func (p *Pipeline) Drain(q *EventQueue) Outcome {
	var out Outcome
	for {
		e, ok := q.Pop()
		if !ok {
			return out
		}
		if !p.live(e) {
			out.Skipped++
			p.debug("event skipped", e)
			continue
		}
		if !p.apply(e, q, &out) {
			out.Skipped++
			p.debug("event had no effect", e)
			continue
		}
		out.Applied++
		p.debug("event applied", e)
	}
}

func (p *Pipeline) live(e Event) bool {
	for _, id := range e.entities() {
		if !p.World.Alive(id) {
			return false
		}
	}
	return true
}

// apply dispatches e and reports whether it changed anything.
func (p *Pipeline) apply(e Event, q *EventQueue, out *Outcome) bool {
	switch e.Kind {
	case EventWait:
		return true
	case EventMove:
		p.applyMove(e, q)
	case EventAttack:
		return p.applyAttack(e, q)
	case EventPickUpItem:
		return p.applyPickUp(e, q)
	case EventDropItem:
		p.applyDrop(e, q)
	case EventHeal:
		return p.applyHeal(e)
	case EventParalyze:
		p.applyParalyze(e)
	case EventRemoveFromMap:
		p.removeFromMap(e.Target)
	case EventAddToMap:
		p.World.Add(e.Target, e.To)
		p.Map.AddEntity(e.Target, e.To)
	case EventRemoveFromInitiative:
		p.Order.Remove(e.Target)
	case EventDespawn:
		p.removeFromMap(e.Target)
		p.Order.Remove(e.Target)
		p.World.DestroyEntity(e.Target)
	case EventDescend:
		p.narrate(gotext.Get("You descend deeper into the cave."))
		out.Descend = true
	case EventQuit:
		out.Quit = true
	default:
		return false
	}
	return true
}

func (p *Pipeline) applyPickUp(e Event, q *EventQueue) bool {
	if !p.Ledger.Stash(e.Target) {
		p.narrate(gotext.Get("Your inventory is full."))
		return false
	}
	p.narrate(gotext.Get("%s picks up the %s.", DisplayName(p.World, e.Actor), itemName(p.World, e.Target)))
	q.Push(RemoveFromMap(e.Target))
	return true
}

func (p *Pipeline) applyDrop(e Event, q *EventQueue) {
	name := itemName(p.World, e.Target)
	if !p.Map.InBounds(e.To.X, e.To.Y) || p.Map.Flags(e.To).Has(gamemap.BlocksMovement) {
		p.narrate(gotext.Get("The %s slams into the wall.", name))
		q.Push(Despawn(e.Target))
		return
	}
	p.narrate(gotext.Get("The %s lands on the floor.", name))
	q.Push(AddToMap(e.Target, e.To))
}

// removeFromMap takes id off the map and drops its position. Entities
// without a position are left alone.
func (p *Pipeline) removeFromMap(id ecs.EntityID) {
	pos, ok := p.World.Get(id, component.CPosition).(component.Position)
	if !ok {
		return
	}
	p.Map.RemoveEntity(id, pos)
	p.World.Remove(id, component.CPosition)
}

func (p *Pipeline) narrate(msg string) {
	if p.Narrator != nil {
		p.Narrator.Narrate(msg)
	}
}

func (p *Pipeline) debug(msg string, e Event) {
	if p.Logger == nil {
		return
	}
	p.Logger.Debug(msg,
		"kind", e.Kind.String(),
		"actor", e.Actor.String(),
		"target", e.Target.String(),
		"amount", e.Amount,
	)
}

// DisplayName returns the capitalized name of id, or "Something".
func DisplayName(w *ecs.World, id ecs.EntityID) string {
	if n, ok := w.Get(id, component.CName).(component.Name); ok {
		return n.Capitalized()
	}
	return gotext.Get("Something")
}

func itemName(w *ecs.World, id ecs.EntityID) string {
	if n, ok := w.Get(id, component.CName).(component.Name); ok {
		return n.Value
	}
	return gotext.Get("item")
}
