package factory

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Starting and per-archetype stats.
const (
	PlayerMaxHP     = 8
	OrcMaxHP        = 3
	OrcDamage       = 1
	EnemySightRange = 8
)

// NewPlayer creates the player entity at p. carried is the health snapshot
// from the previous floor; nil means a fresh game.
func NewPlayer(w *ecs.World, p component.Position, carried *component.Health) ecs.EntityID {
	hp := component.Health{Current: PlayerMaxHP, Max: PlayerMaxHP}
	if carried != nil {
		hp = *carried
	}
	id := w.CreateEntity()
	w.Add(id, p)
	w.Add(id, hp)
	w.Add(id, component.Name{Value: "player"})
	w.Add(id, component.Renderable{
		Glyph:       "🧙",
		FGColor:     tcell.ColorYellow,
		RenderOrder: 10,
	})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.BlocksMovement{})
	return id
}

// NewOrc creates the standard melee enemy.
func NewOrc(w *ecs.World, p component.Position) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, p)
	w.Add(id, component.Health{Current: OrcMaxHP, Max: OrcMaxHP})
	w.Add(id, component.Name{Value: "orc"})
	w.Add(id, component.Renderable{
		Glyph:       "👹",
		FGColor:     tcell.ColorRed,
		RenderOrder: 5,
	})
	w.Add(id, component.EnemyAI{SightRange: EnemySightRange, Damage: OrcDamage})
	w.Add(id, component.BlocksMovement{})
	return id
}

var itemGlyphs = map[component.ItemKind]string{
	component.ItemHealthPotion:      "🧪",
	component.ItemScrollOfLightning: "⚡",
	component.ItemScrollOfParalysis: "🌀",
	component.ItemScrollOfFireball:  "🔥",
}

// NewItem creates an item of the given archetype with its default potency.
func NewItem(w *ecs.World, kind component.ItemKind, p component.Position) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, p)
	w.Add(id, component.Item{Kind: kind, Potency: kind.DefaultPotency()})
	w.Add(id, component.Name{Value: kind.String()})
	w.Add(id, component.Renderable{
		Glyph:       itemGlyphs[kind],
		FGColor:     tcell.ColorGreen,
		RenderOrder: 2,
	})
	return id
}
