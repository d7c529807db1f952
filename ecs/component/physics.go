package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are filled in by the physics system on first sync.
type PhysicsBody struct {
	Body        *cp.Body
	Shape       *cp.Shape
	GroundShape *cp.Shape

	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	// AirFriction replaces Friction while the body is airborne.
	AirFriction   float64
	Static        bool
	FixedRotation bool

	// Initial velocity applied when the body is created.
	VX float64
	VY float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
