package motion

// Jump starts an ascent if the jump gate is open and a jump is banked.
// Ascents from successive jumps may overlap; each adds its own velocity.
func (c *Controller) Jump() {
	if c == nil || !c.state.CanJump || c.state.JumpsRemaining <= 0 {
		return
	}
	c.state.JumpsRemaining--

	multiplier := c.cfg.JumpForceUpMultiplier
	endAscent := func() { c.state.FallFaster = true }
	c.tasks.Start(&Task{
		Kind:     TaskJumpAscent,
		Duration: c.cfg.JumpTime,
		Curve:    c.cfg.JumpCurve,
		OnStep: func(sample, dt float64) {
			v := c.body.Velocity()
			v.Y += sample * multiplier * dt
			c.body.SetVelocity(v)
		},
		OnComplete: endAscent,
		OnCancel:   endAscent,
	})
}
