package game

import "cavecrawl/internal/component"

// Intent is one player command decoded by a frontend.
type Intent interface {
	isIntent()
}

// IntentNone advances the simulation without player input.
type IntentNone struct{}

// IntentStart leaves the main menu.
type IntentStart struct{}

// IntentMove steps or bumps one cell orthogonally.
type IntentMove struct{ DX, DY int }

// IntentPickUp picks up an item on the player's cell.
type IntentPickUp struct{}

// IntentSelect selects an inventory slot (0-based).
type IntentSelect struct{ Slot int }

// IntentUse uses the selected item at the cursor cell.
type IntentUse struct{ Cursor component.Position }

// IntentDrop throws the selected item at the cursor cell.
type IntentDrop struct{ Cursor component.Position }

// IntentQuit ends the run and returns to the menu.
type IntentQuit struct{}

func (IntentNone) isIntent()   {}
func (IntentStart) isIntent()  {}
func (IntentMove) isIntent()   {}
func (IntentPickUp) isIntent() {}
func (IntentSelect) isIntent() {}
func (IntentUse) isIntent()    {}
func (IntentDrop) isIntent()   {}
func (IntentQuit) isIntent()   {}
