// Package ecs is a minimal entity-component store: entities are ids and
// components are plain values kept in sparse per-type tables.
package ecs

import "fmt"

// EntityID names an entity. Ids are minted by World and never reused.
type EntityID uint64

// NilEntity is never minted and marks "no entity".
const NilEntity EntityID = 0

// String renders the id for logs and panics.
func (id EntityID) String() string { return fmt.Sprintf("e%d", uint64(id)) }

// ComponentType keys a component table.
type ComponentType uint8

// Component is implemented by every value stored in a World.
type Component interface {
	Type() ComponentType
}
