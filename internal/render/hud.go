package render

import (
	"cavecrawl/internal/component"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of rows below the map: a separator, the status
// line, the inventory line and six log lines.
const HUDHeight = 9

// Status is everything the HUD shows.
type Status struct {
	HP        component.Health
	Floor     int
	Level     int
	XP        int
	NeededXP  int
	Inventory []string // slot contents, "" for empty
	Selected  int      // -1 when nothing is selected
	Logs      []string // newest first
	Cursor    string   // description of the hovered cell
}

// DrawHUD renders the status bar, inventory and log, then shows the screen.
func (r *Renderer) DrawHUD(st Status) {
	_, screenH := r.screen.Size()
	y := screenH - HUDHeight

	r.drawHLine(y, tcell.ColorGray)
	status := gotext.Get("HP: %d/%d  Floor: %d  %s  Level: %d  XP: %d/%d",
		st.HP.Current, st.HP.Max, st.Floor, ThemeFor(st.Floor).Name, st.Level, st.XP, st.NeededXP)
	if st.Cursor != "" {
		status += "  | " + st.Cursor
	}
	r.drawText(0, y+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	col := 0
	for i, name := range st.Inventory {
		if name == "" {
			name = "-"
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if i == st.Selected {
			style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
		}
		col = r.drawText(col, y+2, fmt.Sprintf("%d:%s", i+1, name), style) + 2
	}

	for i, msg := range st.Logs {
		color := tcell.ColorLightYellow
		if i > 0 {
			color = tcell.ColorGray
		}
		r.drawText(0, y+3+i, msg, tcell.StyleDefault.Foreground(color))
	}

	r.screen.Show()
}

// DrawMenu renders a centred title with lines below it and shows the screen.
func (r *Renderer) DrawMenu(title string, lines []string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	y := max(h/2-len(lines)/2-2, 0)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.drawText(max((w-runewidth.StringWidth(title))/2, 0), y, title, gold)
	r.drawText(max((w-runewidth.StringWidth(title))/2, 0), y+1, strings.Repeat("─", runewidth.StringWidth(title)), gold)
	for i, line := range lines {
		r.drawText(max((w-runewidth.StringWidth(line))/2, 0), y+3+i, line, white)
	}
	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}
