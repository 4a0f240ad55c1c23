package game

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
)

// InventorySize is the number of inventory slots.
const InventorySize = 5

// GameData is the run-wide progress shared by every floor.
type GameData struct {
	Inventory [InventorySize]ecs.EntityID // NilEntity marks an empty slot
	Selected  int                         // -1 when no slot is selected
	Floor     int
	Level     int
	CurrentXP int
	NeededXP  int
	// PreviousHP is the player's health when they left the last floor.
	// nil on the first floor.
	PreviousHP *component.Health
}

// NewGameData returns the state of a fresh run.
func NewGameData() *GameData {
	return &GameData{
		Selected: -1,
		Floor:    1,
		Level:    1,
		NeededXP: 3,
	}
}

// Stash puts item into the first empty slot.
func (d *GameData) Stash(item ecs.EntityID) bool {
	slot, ok := d.FreeSlot()
	if !ok {
		return false
	}
	d.Inventory[slot] = item
	return true
}

// FreeSlot returns the first empty slot.
func (d *GameData) FreeSlot() (int, bool) {
	for i, id := range d.Inventory {
		if id == ecs.NilEntity {
			return i, true
		}
	}
	return 0, false
}

// SelectedItem returns the item in the selected slot.
func (d *GameData) SelectedItem() (ecs.EntityID, bool) {
	if d.Selected < 0 || d.Selected >= InventorySize {
		return ecs.NilEntity, false
	}
	id := d.Inventory[d.Selected]
	return id, id != ecs.NilEntity
}

// TakeSelected empties the selected slot and clears the selection.
func (d *GameData) TakeSelected() ecs.EntityID {
	id, ok := d.SelectedItem()
	if !ok {
		return ecs.NilEntity
	}
	d.Inventory[d.Selected] = ecs.NilEntity
	d.Selected = -1
	return id
}

// GrantXP adds experience. Reaching the threshold resets XP, raises the
// threshold by 2 and gains a level.
func (d *GameData) GrantXP(n int) (int, bool) {
	d.CurrentXP += n
	if d.CurrentXP < d.NeededXP {
		return d.Level, false
	}
	d.CurrentXP = 0
	d.NeededXP += 2
	d.Level++
	return d.Level, true
}

// clearInventory empties every slot, as happens when leaving a floor.
func (d *GameData) clearInventory() {
	d.Inventory = [InventorySize]ecs.EntityID{}
	d.Selected = -1
}

// Logs is the bounded narration ring, newest first.
type Logs struct {
	lines []string
}

// LogCapacity is the number of lines Logs keeps.
const LogCapacity = 6

// Narrate prepends msg, dropping the oldest line when full.
func (l *Logs) Narrate(msg string) {
	l.lines = append([]string{msg}, l.lines...)
	if len(l.lines) > LogCapacity {
		l.lines = l.lines[:LogCapacity]
	}
}

// Lines returns the log, newest first.
func (l *Logs) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Clear empties the log.
func (l *Logs) Clear() { l.lines = nil }
