package render

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/gamemap"
	"cavecrawl/internal/system"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws a floor and its HUD onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen. The bottom HUDHeight
// rows are reserved for the HUD.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(component.Position{}, w, max(h-HUDHeight, 1)),
	}
}

// Resize adapts the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-HUDHeight, 1))
}

// CenterOn recenters the camera on p.
func (r *Renderer) CenterOn(p component.Position) { r.camera.Center(p) }

// ScreenToWorld converts a terminal cell, e.g. a mouse click, to a grid
// position. ok is false for clicks on the HUD.
func (r *Renderer) ScreenToWorld(sx, sy int) (component.Position, bool) {
	if sy >= r.camera.Height {
		return component.Position{}, false
	}
	return r.camera.ScreenToWorld(sx, sy), true
}

// DrawFrame clears the screen and draws the terrain and occupants of m.
// Tiles are drawn once explored; everything else only while in view.
func (r *Renderer) DrawFrame(w *ecs.World, m *gamemap.WorldMap, floor int) {
	r.screen.Clear()
	r.drawTiles(w, m, ThemeFor(floor))
	r.drawEntities(w, m)
}

func (r *Renderer) drawTiles(w *ecs.World, m *gamemap.WorldMap, theme Theme) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for _, id := range w.Query(component.CTile, component.CPosition) {
		vis := system.Visibility(w, m, id)
		if vis == system.Hidden {
			continue
		}
		pos := w.MustGet(id, component.CPosition).(component.Position)
		sx, sy, onScreen := r.camera.WorldToScreen(pos)
		if !onScreen {
			continue
		}
		tile := w.MustGet(id, component.CTile).(component.Tile)
		r.putGlyph(sx, sy, theme.TileGlyph(tile.Kind, vis == system.Remembered), style)
	}
}

type drawable struct {
	id   ecs.EntityID
	pos  component.Position
	rend component.Renderable
}

// drawEntities draws visible non-tile entities, lowest RenderOrder first.
func (r *Renderer) drawEntities(w *ecs.World, m *gamemap.WorldMap) {
	var list []drawable
	for _, id := range w.Query(component.CRenderable, component.CPosition) {
		if w.Has(id, component.CTile) || system.Visibility(w, m, id) != system.Shown {
			continue
		}
		list = append(list, drawable{
			id:   id,
			pos:  w.MustGet(id, component.CPosition).(component.Position),
			rend: w.MustGet(id, component.CRenderable).(component.Renderable),
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].rend.RenderOrder < list[j].rend.RenderOrder
	})

	for _, d := range list {
		sx, sy, onScreen := r.camera.WorldToScreen(d.pos)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(d.rend.FGColor).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, d.rend.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < CellWidth {
		// Pad narrow glyphs so the grid stays aligned.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
