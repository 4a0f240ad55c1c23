package component

import (
	"cavecrawl/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 7

// Renderable is a presentation hint; the simulation never reads it.
type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
