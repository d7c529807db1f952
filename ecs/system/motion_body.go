package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/charmotion/motion"
)

// cpBody adapts a Chipmunk2D body and its collider to motion.Body.
type cpBody struct {
	body        *cp.Body
	shape       *cp.Shape
	friction    float64
	airFriction float64
	gravity     bool
}

func newCPBody(body *cp.Body, shape *cp.Shape, friction, airFriction float64) *cpBody {
	return &cpBody{
		body:        body,
		shape:       shape,
		friction:    friction,
		airFriction: airFriction,
		gravity:     true,
	}
}

func (b *cpBody) Position() cp.Vector {
	return b.body.Position()
}

func (b *cpBody) Velocity() cp.Vector {
	return b.body.Velocity()
}

func (b *cpBody) SetVelocity(v cp.Vector) {
	b.body.SetVelocityVector(v)
}

func (b *cpBody) AddForce(f cp.Vector) {
	b.body.ApplyForceAtWorldPoint(f, b.body.Position())
}

func (b *cpBody) GravityEnabled() bool {
	return b.gravity
}

func (b *cpBody) SetGravityEnabled(enabled bool) {
	if b.gravity == enabled {
		return
	}
	b.gravity = enabled
	if enabled {
		b.body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
		return
	}
	b.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
	})
}

func (b *cpBody) SetMaterial(m motion.Material) {
	if b.shape == nil {
		return
	}
	switch m {
	case motion.MaterialAirborne:
		b.shape.SetFriction(b.airFriction)
	default:
		b.shape.SetFriction(b.friction)
	}
}
