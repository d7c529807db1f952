package system

import (
	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
)

// ContactSystem drains the contact events queued by the physics step and
// forwards them to the controllers of the entities involved.
type ContactSystem struct{}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{}
}

func (s *ContactSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventContact {
			continue
		}
		ev, ok := evt.Data.(ecs.ContactEvent)
		if !ok {
			continue
		}
		m, ok := ecs.Get(w, ev.Entity, component.MotionComponent.Kind())
		if !ok || m.Controller == nil {
			continue
		}

		switch ev.Kind {
		case ecs.ContactLanded:
			m.Controller.NotifyLanded()
		case ecs.ContactLeftGround:
			m.Controller.NotifyLeftGround()
		case ecs.ContactBegin:
			m.Controller.NotifyCollision(collisionPartner(w, ev.Other), ev.Points)
		}
	}
}

// collisionPartner returns the value the controller sees for other: an
// explodable adapter while other can still explode, the bare entity
// otherwise.
func collisionPartner(w *ecs.World, other ecs.Entity) any {
	ex, ok := ecs.Get(w, other, component.ExplodableComponent.Kind())
	if !ok || ex.Exploded || ecs.Has(w, other, component.ExplosionRequestComponent.Kind()) {
		return other
	}
	return explodableEntity{w: w, e: other}
}
