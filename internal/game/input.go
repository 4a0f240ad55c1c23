package game

import (
	"cavecrawl/internal/component"

	"github.com/gdamore/tcell/v2"
)

// keyToIntent maps a key press to an intent. exit is true for the keys that
// close the program.
func keyToIntent(ev *tcell.EventKey) (intent Intent, exit bool) {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return IntentMove{DY: -1}, false
	case tcell.KeyDown:
		return IntentMove{DY: 1}, false
	case tcell.KeyRight:
		return IntentMove{DX: 1}, false
	case tcell.KeyLeft:
		return IntentMove{DX: -1}, false
	case tcell.KeyEnter:
		return IntentStart{}, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentNone{}, true
	}

	// Rune keys.
	switch r := ev.Rune(); r {
	case 'w', 'W':
		return IntentMove{DY: -1}, false
	case 's', 'S':
		return IntentMove{DY: 1}, false
	case 'd', 'D':
		return IntentMove{DX: 1}, false
	case 'a', 'A':
		return IntentMove{DX: -1}, false
	case 'g', 'G':
		return IntentPickUp{}, false
	case 'q', 'Q':
		return IntentQuit{}, false
	case '1', '2', '3', '4', '5':
		return IntentSelect{Slot: int(r - '1')}, false
	}
	return IntentNone{}, false
}

// clickToIntent maps newly pressed mouse buttons at cursor to an intent:
// the primary button uses the selected item, the secondary one throws it.
func clickToIntent(pressed tcell.ButtonMask, cursor component.Position) Intent {
	switch {
	case pressed&tcell.Button1 != 0:
		return IntentUse{Cursor: cursor}
	case pressed&tcell.Button2 != 0:
		return IntentDrop{Cursor: cursor}
	}
	return IntentNone{}
}
