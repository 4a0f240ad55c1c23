package game

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/gamemap"
	"cavecrawl/internal/system"
)

// playerIntent decodes one intent into the events it causes. nil means the
// intent does nothing this tick.
func (s *State) playerIntent(intent Intent) []system.Event {
	switch in := intent.(type) {
	case IntentMove:
		res, dest, target := system.TryMove(s.World, s.Map, s.player, in.DX, in.DY)
		switch res {
		case system.MoveOK:
			from := s.World.MustGet(s.player, component.CPosition).(component.Position)
			return []system.Event{system.Move(s.player, from, dest)}
		case system.MoveAttack:
			return []system.Event{system.Attack(s.player, target, system.MeleeDamage)}
		}
	case IntentPickUp:
		pos := s.World.MustGet(s.player, component.CPosition).(component.Position)
		if item, ok := s.Map.FirstWith(s.World, pos, component.CItem); ok {
			return []system.Event{system.PickUpItem(s.player, item)}
		}
	case IntentSelect:
		if in.Slot >= 0 && in.Slot < InventorySize {
			s.Data.Selected = in.Slot
		}
	case IntentUse:
		return s.useItem(in.Cursor)
	case IntentDrop:
		if _, ok := s.Data.SelectedItem(); !ok || !s.cursorInView(in.Cursor) {
			return nil
		}
		item := s.Data.TakeSelected()
		return []system.Event{system.DropItem(s.player, item, in.Cursor)}
	case IntentQuit:
		return []system.Event{system.Quit()}
	}
	return nil
}

// useItem applies the selected item's targeting rule at cursor. The slot is
// consumed only when the rule finds a target.
func (s *State) useItem(cursor component.Position) []system.Event {
	item, ok := s.Data.SelectedItem()
	if !ok || !s.cursorInView(cursor) {
		return nil
	}
	it, ok := s.World.Get(item, component.CItem).(component.Item)
	if !ok {
		return nil
	}

	var events []system.Event
	switch it.Kind {
	case component.ItemHealthPotion:
		if target, ok := s.Map.FirstWith(s.World, cursor, component.CHealth); ok {
			events = append(events, system.Heal(target, it.Potency))
		}
	case component.ItemScrollOfLightning:
		if target, ok := s.Map.FirstWith(s.World, cursor, component.CHealth); ok {
			events = append(events, system.Attack(s.player, target, it.Potency))
		}
	case component.ItemScrollOfParalysis:
		if target, ok := s.firstController(cursor); ok {
			events = append(events, system.Paralyze(target, it.Potency))
		}
	case component.ItemScrollOfFireball:
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, id := range s.Map.EntitiesAt(cursor.Add(dx, dy)) {
					if s.World.Has(id, component.CHealth) {
						events = append(events, system.Attack(s.player, id, it.Potency))
					}
				}
			}
		}
	}
	if len(events) == 0 {
		return nil
	}
	s.Data.TakeSelected()
	return append(events, system.Despawn(item))
}

// firstController returns the first entity at p that can be given orders:
// the player or an enemy.
func (s *State) firstController(p component.Position) (ecs.EntityID, bool) {
	for _, id := range s.Map.EntitiesAt(p) {
		if s.World.Has(id, component.CTagPlayer) || s.World.Has(id, component.CEnemyAI) {
			return id, true
		}
	}
	return ecs.NilEntity, false
}

func (s *State) cursorInView(p component.Position) bool {
	return s.Map.InBounds(p.X, p.Y) && s.Map.Flags(p).Has(gamemap.InView)
}
