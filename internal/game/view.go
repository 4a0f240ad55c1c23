package game

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/system"
	"fmt"
)

// Player returns the player entity, or NilEntity outside a floor.
func (s *State) Player() ecs.EntityID { return s.player }

// Current returns the entity holding initiative.
func (s *State) Current() ecs.EntityID { return s.current }

// PlayerPosition returns where the player stands.
func (s *State) PlayerPosition() (component.Position, bool) {
	p, ok := s.World.Get(s.player, component.CPosition).(component.Position)
	return p, ok
}

// PlayerHealth returns the player's hit points.
func (s *State) PlayerHealth() (component.Health, bool) {
	h, ok := s.World.Get(s.player, component.CHealth).(component.Health)
	return h, ok
}

// Visibility reports how id should be drawn.
func (s *State) Visibility(id ecs.EntityID) system.VisibilityState {
	if s.Map == nil {
		return system.Hidden
	}
	return system.Visibility(s.World, s.Map, id)
}

// InventoryNames lists slot contents by name; empty slots are "".
func (s *State) InventoryNames() [InventorySize]string {
	var names [InventorySize]string
	for i, id := range s.Data.Inventory {
		if id != ecs.NilEntity {
			names[i] = system.DisplayName(s.World, id)
		}
	}
	return names
}

// CursorDetails describes what the player can see at p, e.g. "Orc (2/3)".
// It returns "" for cells out of view or without a named creature or item.
func (s *State) CursorDetails(p component.Position) string {
	if s.Map == nil || !s.cursorInView(p) {
		return ""
	}
	for _, id := range s.Map.EntitiesAt(p) {
		if s.World.Has(id, component.CTile) || !s.World.Has(id, component.CName) {
			continue
		}
		name := system.DisplayName(s.World, id)
		if hp, ok := s.World.Get(id, component.CHealth).(component.Health); ok {
			return fmt.Sprintf("%s (%d/%d)", name, hp.Current, hp.Max)
		}
		return name
	}
	return ""
}
