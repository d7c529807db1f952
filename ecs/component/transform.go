package component

// Transform is the world position of an entity's center in world units,
// y-up.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
