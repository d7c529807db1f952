package system

import (
	"log"

	"github.com/milk9111/charmotion/common"
	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
	"github.com/milk9111/charmotion/motion"
)

// MotionSystem builds controllers for entities whose physics body exists,
// applies reloaded tuning and advances timed motion tasks by one frame.
type MotionSystem struct {
	dt float64
}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{dt: common.FrameDelta}
}

// SetStep overrides the frame delta in seconds.
func (ms *MotionSystem) SetStep(dt float64) {
	if ms == nil || dt <= 0 {
		return
	}
	ms.dt = dt
}

func (ms *MotionSystem) Update(w *ecs.World) {
	if ms == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.MotionComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, m *component.Motion, body *component.PhysicsBody) {
		if m.Controller == nil {
			if body.Body == nil {
				return
			}
			ctrl, err := newController(w, m, body)
			if err != nil {
				log.Printf("motion: build controller for %s: %v", e, err)
				return
			}
			m.Controller = ctrl
			// the body may have touched down before the controller existed
			if gc, ok := ecs.Get(w, e, component.GroundContactComponent.Kind()); ok && gc.Grounded {
				ctrl.NotifyLanded()
			}
		}

		if m.Pending != nil {
			if err := m.Controller.Reconfigure(*m.Pending); err != nil {
				log.Printf("motion: reconfigure %s: %v", e, err)
			} else {
				m.Config = *m.Pending
			}
			m.Pending = nil
		}

		m.Controller.Update(ms.dt)
	})
}

func newController(w *ecs.World, m *component.Motion, body *component.PhysicsBody) (*motion.Controller, error) {
	adapter := newCPBody(body.Body, body.Shape, body.Friction, body.AirFriction)
	ctrl, err := motion.New(m.Config, adapter, worldEffects{w: w})
	if err != nil {
		return nil, err
	}
	ctrl.OnInteract(func() {
		m.Interactions++
	})
	ctrl.OnSwap(func(wants bool) {
		m.Swapping = wants
	})
	return ctrl, nil
}
