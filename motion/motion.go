// Package motion turns discrete player intents into velocity changes on a
// rigid body. A Controller owns one character's motion state and is driven
// from a single update thread: Update once per frame to advance timed
// tasks, then FixedUpdate once per physics step to apply drive and fall
// forces.
package motion

import (
	"errors"

	"github.com/jakecoffman/cp"
)

var (
	ErrNilBody    = errors.New("motion: body is nil")
	ErrNilEffects = errors.New("motion: effects sink is nil")
	ErrNilCurve   = errors.New("motion: curve is nil")
	ErrBadConfig  = errors.New("motion: invalid config")
)

// Material selects the friction profile of the body's collider.
type Material int

const (
	// MaterialGround is the collider's own material.
	MaterialGround Material = iota
	// MaterialAirborne is the low friction material used while off the ground
	// so walls do not hold the body up.
	MaterialAirborne
)

func (m Material) String() string {
	switch m {
	case MaterialGround:
		return "ground"
	case MaterialAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Body is the physics collaborator. Velocities and forces are y-up.
type Body interface {
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	// AddForce accumulates a force for the next physics step.
	AddForce(f cp.Vector)
	GravityEnabled() bool
	SetGravityEnabled(enabled bool)
	SetMaterial(m Material)
}

// Effects receives presentation requests. It replaces any global camera or
// particle singleton.
type Effects interface {
	SpawnLandingEffect(at cp.Vector)
	ShakeCamera(intensity, duration float64)
}

// Explodable is implemented by collision partners that blow up on contact.
type Explodable interface {
	Explode(radius float64, at cp.Vector, force, duration float64)
}

// Collision response parameters.
const (
	ExplosionRadius   = 10.0
	ExplosionForce    = 0.6
	ExplosionDuration = 2.0

	ShakeIntensity = 2.0
	ShakeDuration  = 0.5
)
