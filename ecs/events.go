package ecs

import "github.com/jakecoffman/cp"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// Event types pushed by the physics step.
const (
	EventContact = "contact"
)

// ContactEventKind identifies contact event types.
type ContactEventKind string

const (
	ContactLanded     ContactEventKind = "landed"
	ContactLeftGround ContactEventKind = "left_ground"
	ContactBegin      ContactEventKind = "begin"
)

// ContactEvent reports a ground transition of Entity, or the start of a
// touch between Entity and Other with the contact points of that touch.
type ContactEvent struct {
	Entity Entity
	Kind   ContactEventKind
	Other  Entity
	Points []cp.Vector
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
