package component

// LandingEffectRequest asks for a landing dust effect at a world position.
type LandingEffectRequest struct {
	X float64
	Y float64
}

var LandingEffectRequestComponent = NewComponent[LandingEffectRequest]()
