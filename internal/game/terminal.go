package game

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/render"
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
)

// Terminal is the interactive tcell frontend. It turns terminal events into
// intents and draws the state after each one.
type Terminal struct {
	screen   tcell.Screen
	renderer *render.Renderer
	state    *State
	cursor   component.Position
	buttons  tcell.ButtonMask
}

// NewTerminal initializes the screen for state.
func NewTerminal(state *State) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.EnableMouse(tcell.MouseMotionEvents)
	return &Terminal{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		state:    state,
	}, nil
}

// Run is the event loop. It returns when the player exits, the screen
// closes or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	defer t.screen.Fini()
	go func() {
		<-ctx.Done()
		t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		t.draw()
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		case *tcell.EventResize:
			t.screen.Sync()
			t.renderer.Resize()
		case *tcell.EventKey:
			intent, exit := keyToIntent(ev)
			if exit {
				return nil
			}
			if err := t.state.Advance(ctx, intent); err != nil {
				return err
			}
		case *tcell.EventMouse:
			pressed := ev.Buttons() &^ t.buttons
			t.buttons = ev.Buttons()
			pos, ok := t.renderer.ScreenToWorld(ev.Position())
			if !ok {
				continue
			}
			t.cursor = pos
			if intent := clickToIntent(pressed, pos); intent != (IntentNone{}) {
				if err := t.state.Advance(ctx, intent); err != nil {
					return err
				}
			}
		}
	}
}

func (t *Terminal) draw() {
	s := t.state
	if s.Phase == PhaseMainMenu || s.Map == nil {
		t.renderer.DrawMenu(gotext.Get("CAVECRAWL"), t.menuLines())
		return
	}
	if pos, ok := s.PlayerPosition(); ok {
		t.renderer.CenterOn(pos)
	}
	t.renderer.DrawFrame(s.World, s.Map, s.Data.Floor)

	hp, _ := s.PlayerHealth()
	inv := s.InventoryNames()
	t.renderer.DrawHUD(render.Status{
		HP:        hp,
		Floor:     s.Data.Floor,
		Level:     s.Data.Level,
		XP:        s.Data.CurrentXP,
		NeededXP:  s.Data.NeededXP,
		Inventory: inv[:],
		Selected:  s.Data.Selected,
		Logs:      s.Logs.Lines(),
		Cursor:    s.CursorDetails(t.cursor),
	})
}

func (t *Terminal) menuLines() []string {
	lines := []string{
		gotext.Get("Enter: descend into the caves"),
		gotext.Get("Arrows/WASD move, G picks up, 1-5 select an item"),
		gotext.Get("Left click uses the item, right click throws it"),
		gotext.Get("Q ends the run, Esc leaves"),
	}
	if run := t.state.LastRun; run != nil {
		outcome := gotext.Get("You gave up")
		if run.Died {
			outcome = gotext.Get("You died")
		}
		lines = append(lines, "", gotext.Get("%s on floor %d at level %d after %d turns.", outcome, run.Floor, run.Level, run.Turns))
	}
	return lines
}
