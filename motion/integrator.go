package motion

import (
	"math"

	"github.com/jakecoffman/cp"
)

// FixedUpdate applies the drive and fast fall forces for one physics step.
// Drive force is withheld once |vx| reaches MaxXVelocity, which caps
// acceleration without braking existing momentum. Nothing is applied while
// a dash is running because the dash sets velocity directly.
func (c *Controller) FixedUpdate() {
	if c == nil || c.Dashing() {
		return
	}

	if math.Abs(c.body.Velocity().X) < c.cfg.MaxXVelocity {
		c.body.AddForce(cp.Vector{X: c.state.HorizontalInput * c.cfg.MovementSpeed})
	}
	if c.state.FallFaster {
		c.body.AddForce(cp.Vector{Y: -c.cfg.FallSpeedMultiplier})
	}
}
