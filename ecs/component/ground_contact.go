package component

// GroundContact is owned by the physics system. Grace keeps the body
// grounded for a few steps after the sensor loses contact so small bumps do
// not read as leaving the ground.
type GroundContact struct {
	Grounded bool
	Grace    int
}

var GroundContactComponent = NewComponent[GroundContact]()
