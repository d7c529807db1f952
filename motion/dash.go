package motion

import "github.com/jakecoffman/cp"

// Dash starts a horizontal dash if the dash gate is open. While it runs the
// dash owns the body's velocity, gravity is off and jumping is blocked.
// Requests while the gate is closed are dropped, not queued.
func (c *Controller) Dash() {
	if c == nil || !c.state.CanDash {
		return
	}
	c.state.CanDash = false

	gravity := c.body.GravityEnabled()
	c.body.SetGravityEnabled(false)
	c.dashJumpGate = c.state.CanJump
	c.state.CanJump = false

	force := c.cfg.DashForce
	cooldown := c.cfg.DashCooldown
	release := func() {
		c.body.SetGravityEnabled(gravity)
		c.state.CanJump = c.dashJumpGate
		c.startDashCooldown(cooldown)
	}
	c.tasks.Start(&Task{
		Kind:     TaskDash,
		Duration: c.cfg.DashDuration,
		Curve:    c.cfg.DashCurve,
		OnStep: func(sample, dt float64) {
			c.body.SetVelocity(cp.Vector{X: sample * force * c.state.DashDirection, Y: 0})
		},
		OnComplete: release,
		OnCancel:   release,
	})
}

func (c *Controller) startDashCooldown(duration float64) {
	ready := func() { c.state.CanDash = true }
	c.tasks.Start(&Task{
		Kind:       TaskDashCooldown,
		Duration:   duration,
		OnComplete: ready,
		OnCancel:   ready,
	})
}
