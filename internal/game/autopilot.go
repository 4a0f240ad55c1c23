package game

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/gamemap"
	"cavecrawl/internal/system"
	"math/rand"
)

// Autopilot plays the player's turns for headless runs. It drinks a potion
// when hurt, fights adjacent enemies, walks to the nearest visible item or
// enemy, and otherwise heads for the stairs.
type Autopilot struct {
	rng *rand.Rand
}

// NewAutopilot creates an autopilot that breaks deadlocks with rng.
func NewAutopilot(rng *rand.Rand) *Autopilot {
	return &Autopilot{rng: rng}
}

var autopilotSteps = []IntentMove{{DY: -1}, {DX: 1}, {DY: 1}, {DX: -1}}

// Next returns the intent for the current state.
func (a *Autopilot) Next(s *State) Intent {
	if s.Phase == PhaseMainMenu {
		return IntentStart{}
	}
	pos, ok := s.PlayerPosition()
	if !ok {
		return IntentNone{}
	}

	if in, ok := a.heal(s, pos); ok {
		return in
	}
	if _, free := s.Data.FreeSlot(); free {
		if _, ok := s.Map.FirstWith(s.World, pos, component.CItem); ok {
			return IntentPickUp{}
		}
	}
	for _, step := range autopilotSteps {
		if res, _, _ := system.TryMove(s.World, s.Map, s.player, step.DX, step.DY); res == system.MoveAttack {
			return step
		}
	}

	var goals []component.Position
	for _, id := range s.World.Query(component.CPosition) {
		if s.Visibility(id) != system.Shown {
			continue
		}
		_, free := s.Data.FreeSlot()
		if (free && s.World.Has(id, component.CItem)) || s.World.Has(id, component.CEnemyAI) {
			goals = append(goals, s.World.MustGet(id, component.CPosition).(component.Position))
		}
	}
	goals = append(goals, s.Map.Stairs)
	if in, ok := a.stepToward(s.Map, pos, goals); ok {
		if res, _, _ := system.TryMove(s.World, s.Map, s.player, in.DX, in.DY); res != system.MoveBlocked {
			return in
		}
	}
	return autopilotSteps[a.rng.Intn(len(autopilotSteps))]
}

// heal selects and then drinks a potion once HP is at half or lower.
func (a *Autopilot) heal(s *State, pos component.Position) (Intent, bool) {
	hp, ok := s.PlayerHealth()
	if !ok || hp.Current*2 > hp.Max {
		return nil, false
	}
	for slot, id := range s.Data.Inventory {
		if id == ecs.NilEntity {
			continue
		}
		it, ok := s.World.Get(id, component.CItem).(component.Item)
		if !ok || it.Kind != component.ItemHealthPotion {
			continue
		}
		if s.Data.Selected != slot {
			return IntentSelect{Slot: slot}, true
		}
		return IntentUse{Cursor: pos}, true
	}
	return nil, false
}

// stepToward returns the first step of the cheapest path to any goal.
func (a *Autopilot) stepToward(m *gamemap.WorldMap, from component.Position, goals []component.Position) (IntentMove, bool) {
	best := system.Path{}
	found := false
	for _, g := range goals {
		if g == from {
			continue
		}
		p, ok := system.FindPath(m, from, g)
		if ok && (!found || p.Cost < best.Cost) {
			best, found = p, true
		}
	}
	next, ok := best.Next()
	if !found || !ok {
		return IntentMove{}, false
	}
	return IntentMove{DX: next.X - from.X, DY: next.Y - from.Y}, true
}
