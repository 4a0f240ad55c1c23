package system

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"

	"github.com/leonelquinteros/gotext"
)

// applyHeal clamps to max HP and narrates the amount actually restored.
func (p *Pipeline) applyHeal(e Event) bool {
	hp, ok := p.World.Get(e.Target, component.CHealth).(component.Health)
	if !ok {
		return false
	}
	hp, gained := hp.Healed(e.Amount)
	p.World.Add(e.Target, hp)
	p.narrate(gotext.Get("%s is healed for %d HP.", DisplayName(p.World, e.Target), gained))
	return true
}

func (p *Pipeline) applyParalyze(e Event) {
	p.World.Add(e.Target, component.Paralyzed{TurnsRemaining: e.Amount})
	p.narrate(gotext.Get("%s is paralyzed for %d turns.", DisplayName(p.World, e.Target), e.Amount))
}

// TickParalysis spends one paralyzed turn of id and reports whether the
// actor must wait. The turn on which the counter reaches zero is a normal one.
func TickParalysis(w *ecs.World, id ecs.EntityID) bool {
	p, ok := w.Get(id, component.CParalyzed).(component.Paralyzed)
	if !ok {
		return false
	}
	p.TurnsRemaining--
	if p.TurnsRemaining <= 0 {
		w.Remove(id, component.CParalyzed)
		return false
	}
	w.Add(id, p)
	return true
}
