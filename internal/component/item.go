package component

import "cavecrawl/internal/ecs"

const CItem ecs.ComponentType = 4

// ItemKind selects an item archetype and with it the targeting rule used
// when the item is read or drunk.
type ItemKind uint8

const (
	ItemHealthPotion ItemKind = iota
	ItemScrollOfLightning
	ItemScrollOfParalysis
	ItemScrollOfFireball
)

// ItemKinds lists every archetype, in generation-table order.
var ItemKinds = []ItemKind{
	ItemHealthPotion,
	ItemScrollOfLightning,
	ItemScrollOfParalysis,
	ItemScrollOfFireball,
}

// String returns the narration name of the archetype.
func (k ItemKind) String() string {
	switch k {
	case ItemHealthPotion:
		return "health potion"
	case ItemScrollOfLightning:
		return "scroll of lightning"
	case ItemScrollOfParalysis:
		return "scroll of paralysis"
	case ItemScrollOfFireball:
		return "scroll of fireball"
	default:
		return "unknown item"
	}
}

// DefaultPotency is the potency each archetype spawns with: HP healed,
// damage dealt or turns of paralysis.
func (k ItemKind) DefaultPotency() int {
	switch k {
	case ItemHealthPotion:
		return 4
	case ItemScrollOfLightning:
		return 2
	case ItemScrollOfParalysis:
		return 4
	case ItemScrollOfFireball:
		return 1
	default:
		return 0
	}
}

// Item marks a pick-up-able entity. It lives on the map until picked up and
// in GameData's inventory afterwards.
type Item struct {
	Kind    ItemKind
	Potency int
}

func (Item) Type() ecs.ComponentType { return CItem }
