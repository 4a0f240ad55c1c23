package component

import "cavecrawl/internal/ecs"

const CHealth ecs.ComponentType = 2

// Health is an entity's hit points. Current may drop below zero on the
// killing blow.
type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }

// Dead reports whether the entity has run out of hit points.
func (h Health) Dead() bool { return h.Current <= 0 }

// Healed returns h raised by n, clamped to Max, and the amount gained.
// Healing never lowers Current.
func (h Health) Healed(n int) (Health, int) {
	before := h.Current
	h.Current = max(min(h.Current+n, h.Max), before)
	return h, h.Current - before
}
