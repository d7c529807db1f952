package component

import "github.com/milk9111/charmotion/motion"

// Motion attaches a motion controller to a physics body. The controller is
// built by the motion system once the body exists; Config is validated when
// the entity is built.
type Motion struct {
	Config     motion.Config
	Controller *motion.Controller
	// Pending holds a reloaded config to apply on the next frame.
	Pending *motion.Config

	Interactions int
	Swapping     bool
}

var MotionComponent = NewComponent[Motion]()

// IntentQueue carries intents that do not come from device input, such as
// a scripted replay. The intent system drains it every frame.
type IntentQueue struct {
	Pending []motion.Intent
}

var IntentQueueComponent = NewComponent[IntentQueue]()
