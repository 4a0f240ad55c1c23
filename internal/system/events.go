package system

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"

	"github.com/zyedidia/generic/queue"
)

// EventKind discriminates Event.
type EventKind uint8

const (
	EventWait EventKind = iota
	EventMove
	EventAttack
	EventPickUpItem
	EventDropItem
	EventHeal
	EventParalyze
	EventRemoveFromMap
	EventAddToMap
	EventRemoveFromInitiative
	EventDespawn
	EventDescend
	EventQuit
)

var eventNames = [...]string{
	"wait", "move", "attack", "pick-up", "drop", "heal", "paralyze",
	"remove-from-map", "add-to-map", "remove-from-initiative", "despawn",
	"descend", "quit",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is one primitive state change. Which fields matter depends on Kind:
//
//	Move       Actor From To
//	Attack     Actor Target Amount(damage)
//	PickUpItem Actor Target(item)
//	DropItem   Actor Target(item) To
//	Heal       Target Amount
//	Paralyze   Target Amount(turns)
//	AddToMap   Target To
//	Wait, RemoveFromMap, RemoveFromInitiative, Despawn use Target.
type Event struct {
	Kind   EventKind
	Actor  ecs.EntityID
	Target ecs.EntityID
	From   component.Position
	To     component.Position
	Amount int
}

func Wait(id ecs.EntityID) Event { return Event{Kind: EventWait, Target: id} }

func Move(id ecs.EntityID, from, to component.Position) Event {
	return Event{Kind: EventMove, Actor: id, From: from, To: to}
}

func Attack(attacker, target ecs.EntityID, damage int) Event {
	return Event{Kind: EventAttack, Actor: attacker, Target: target, Amount: damage}
}

func PickUpItem(actor, item ecs.EntityID) Event {
	return Event{Kind: EventPickUpItem, Actor: actor, Target: item}
}

func DropItem(actor, item ecs.EntityID, at component.Position) Event {
	return Event{Kind: EventDropItem, Actor: actor, Target: item, To: at}
}

func Heal(id ecs.EntityID, amount int) Event {
	return Event{Kind: EventHeal, Target: id, Amount: amount}
}

func Paralyze(id ecs.EntityID, turns int) Event {
	return Event{Kind: EventParalyze, Target: id, Amount: turns}
}

func RemoveFromMap(id ecs.EntityID) Event { return Event{Kind: EventRemoveFromMap, Target: id} }

func AddToMap(id ecs.EntityID, at component.Position) Event {
	return Event{Kind: EventAddToMap, Target: id, To: at}
}

func RemoveFromInitiative(id ecs.EntityID) Event {
	return Event{Kind: EventRemoveFromInitiative, Target: id}
}

func Despawn(id ecs.EntityID) Event { return Event{Kind: EventDespawn, Target: id} }

func Descend() Event { return Event{Kind: EventDescend} }

func Quit() Event { return Event{Kind: EventQuit} }

// entities lists the entity ids the event refers to.
func (e Event) entities() []ecs.EntityID {
	var ids []ecs.EntityID
	if e.Actor != ecs.NilEntity {
		ids = append(ids, e.Actor)
	}
	if e.Target != ecs.NilEntity {
		ids = append(ids, e.Target)
	}
	return ids
}

// EventQueue is the FIFO drained by Pipeline. Handlers push follow-up events
// onto the same queue, so cascades resolve before the drain returns.
type EventQueue struct {
	q   *queue.Queue[Event]
	len int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{q: queue.New[Event]()}
}

// Push appends e at the tail.
func (q *EventQueue) Push(e Event) {
	q.q.Enqueue(e)
	q.len++
}

// Pop removes the head event.
func (q *EventQueue) Pop() (Event, bool) {
	if q.q.Empty() {
		return Event{}, false
	}
	q.len--
	return q.q.Dequeue(), true
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int { return q.len }
