package system

import (
	"cavecrawl/internal/component"

	"github.com/leonelquinteros/gotext"
)

// MeleeDamage is dealt by a bump attack.
const MeleeDamage = 1

// LevelUpMaxHP is added to the attacker's max HP on a level-up.
const LevelUpMaxHP = 2

// applyAttack subtracts damage and, on a kill, queues the removal cascade:
// map, then initiative, then despawn. A target already at zero HP is dying
// and takes no further hits, so the cascade runs once.
func (p *Pipeline) applyAttack(e Event, q *EventQueue) bool {
	hp, ok := p.World.Get(e.Target, component.CHealth).(component.Health)
	if !ok || hp.Dead() {
		return false
	}
	attacker, target := DisplayName(p.World, e.Actor), DisplayName(p.World, e.Target)
	hp.Current -= e.Amount
	p.World.Add(e.Target, hp)
	p.narrate(gotext.Get("%s hits %s for %d damage.", attacker, target, e.Amount))
	if !hp.Dead() {
		return true
	}

	p.narrate(gotext.Get("%s dies.", target))
	if p.World.Has(e.Actor, component.CTagPlayer) && e.Actor != e.Target {
		if level, up := p.Ledger.GrantXP(1); up {
			if ahp, ok := p.World.Get(e.Actor, component.CHealth).(component.Health); ok {
				ahp.Max += LevelUpMaxHP
				p.World.Add(e.Actor, ahp)
			}
			p.narrate(gotext.Get("%s reaches level %d.", attacker, level))
		}
	}
	q.Push(RemoveFromMap(e.Target))
	q.Push(RemoveFromInitiative(e.Target))
	q.Push(Despawn(e.Target))
	return true
}
