package system

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// InitiativeOrder is the round-robin turn queue of actors. The head after
// Advance holds the Initiative tag.
type InitiativeOrder struct {
	queue   []ecs.EntityID
	members mapset.Set[ecs.EntityID]
}

func NewInitiativeOrder() *InitiativeOrder {
	return &InitiativeOrder{members: mapset.New[ecs.EntityID]()}
}

// Advance hands the turn to the next actor. The previous holder loses its
// Initiative tag, actors not yet enrolled join at the back in id order, and
// the front of the queue rotates to the back tagged Initiative. It reports
// false when there are no actors.
func (o *InitiativeOrder) Advance(w *ecs.World) (ecs.EntityID, bool) {
	for _, id := range w.Query(component.CInitiative) {
		w.Remove(id, component.CInitiative)
	}

	actors := append(w.Query(component.CTagPlayer), w.Query(component.CEnemyAI)...)
	slices.Sort(actors)
	for _, id := range slices.Compact(actors) {
		if !o.members.Has(id) {
			o.members.Put(id)
			o.queue = append(o.queue, id)
		}
	}

	for len(o.queue) > 0 {
		id := o.queue[0]
		o.queue = o.queue[1:]
		if !w.Alive(id) {
			o.members.Remove(id)
			continue
		}
		o.queue = append(o.queue, id)
		w.Add(id, component.Initiative{})
		return id, true
	}
	return ecs.NilEntity, false
}

// Remove drops id from the rotation.
func (o *InitiativeOrder) Remove(id ecs.EntityID) {
	if !o.members.Has(id) {
		return
	}
	o.members.Remove(id)
	o.queue = slices.DeleteFunc(o.queue, func(e ecs.EntityID) bool { return e == id })
}

// Contains reports whether id is enrolled.
func (o *InitiativeOrder) Contains(id ecs.EntityID) bool { return o.members.Has(id) }

// Len returns the number of enrolled actors.
func (o *InitiativeOrder) Len() int { return len(o.queue) }

// Order returns the queue from next-to-act to current holder.
func (o *InitiativeOrder) Order() []ecs.EntityID { return slices.Clone(o.queue) }
