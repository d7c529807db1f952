package component

// Explodable marks a body that blows up when the player touches it.
type Explodable struct {
	Exploded bool
}

var ExplodableComponent = NewComponent[Explodable]()

// ExplosionRequest asks the explosion system to blow up the entity it is
// attached to. Duration is in seconds.
type ExplosionRequest struct {
	Radius   float64
	X        float64
	Y        float64
	Force    float64
	Duration float64
}

var ExplosionRequestComponent = NewComponent[ExplosionRequest]()
