package motion

import (
	"github.com/jakecoffman/cp"
)

// Controller arbitrates jump, dash and drive requests for one body. It is
// not safe for concurrent use; all calls must come from the update thread.
type Controller struct {
	cfg     Config
	body    Body
	effects Effects

	state State
	tasks Scheduler

	// jump gate to restore when the running dash ends
	dashJumpGate bool

	swapEnabled       bool
	interactListeners []func()
	swapListeners     []func(bool)
}

// New validates cfg and returns a controller in its initial state: both
// gates open, no jumps banked until the first landing, facing right.
func New(cfg Config, body Body, effects Effects) (*Controller, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if effects == nil {
		return nil, ErrNilEffects
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:         cfg,
		body:        body,
		effects:     effects,
		state:       newState(),
		swapEnabled: true,
	}, nil
}

// Update advances timed tasks by one frame.
func (c *Controller) Update(dt float64) {
	if c == nil || dt <= 0 {
		return
	}
	c.tasks.Step(dt)
}

// State returns a copy of the current motion state.
func (c *Controller) State() State {
	if c == nil {
		return State{}
	}
	return c.state
}

// Config returns the active tuning.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// Reconfigure swaps in new tuning. Tasks already running keep the values
// they started with. The jump budget is clamped to the new maximum.
func (c *Controller) Reconfigure(cfg Config) error {
	if c == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	if c.state.JumpsRemaining > cfg.MaxJumps {
		c.state.JumpsRemaining = cfg.MaxJumps
	}
	return nil
}

// Dashing reports whether a dash task is running.
func (c *Controller) Dashing() bool {
	if c == nil {
		return false
	}
	return c.tasks.Active(TaskDash) > 0
}

// ActiveTasks counts running tasks of a kind.
func (c *Controller) ActiveTasks(kind TaskKind) int {
	if c == nil {
		return 0
	}
	return c.tasks.Active(kind)
}

// Interrupt stops any jump ascent or dash at the next Update. A cancelled
// dash still restores gravity and the jump gate and enters its cooldown.
func (c *Controller) Interrupt() {
	if c == nil {
		return
	}
	c.tasks.CancelKind(TaskJumpAscent)
	c.tasks.CancelKind(TaskDash)
}

// NotifyLanded refills the jump budget and ends fast fall. During a dash
// the jump gate stays closed and reopens when the dash ends.
func (c *Controller) NotifyLanded() {
	if c == nil {
		return
	}
	if c.Dashing() {
		c.dashJumpGate = true
	} else {
		c.state.CanJump = true
	}
	c.state.JumpsRemaining = c.cfg.MaxJumps
	c.state.FallFaster = false
	c.state.Airborne = false
	c.body.SetMaterial(MaterialGround)
	c.effects.SpawnLandingEffect(c.body.Position())
}

// NotifyLeftGround switches the collider to the airborne material.
func (c *Controller) NotifyLeftGround() {
	if c == nil {
		return
	}
	c.state.Airborne = true
	c.body.SetMaterial(MaterialAirborne)
}

// NotifyCollision handles the start of a contact with other. If other is
// Explodable it explodes once at the first contact point, whatever the
// number of contacts.
func (c *Controller) NotifyCollision(other any, contacts []cp.Vector) {
	if c == nil || other == nil {
		return
	}
	target, ok := other.(Explodable)
	if !ok {
		return
	}
	at := c.body.Position()
	if len(contacts) > 0 {
		at = contacts[0]
	}
	target.Explode(ExplosionRadius, at, ExplosionForce, ExplosionDuration)
	c.effects.ShakeCamera(ShakeIntensity, ShakeDuration)
}

// OnInteract registers a listener for interact intents.
func (c *Controller) OnInteract(fn func()) {
	if c == nil || fn == nil {
		return
	}
	c.interactListeners = append(c.interactListeners, fn)
}

// OnSwap registers a listener for swap state changes.
func (c *Controller) OnSwap(fn func(wantsToSwap bool)) {
	if c == nil || fn == nil {
		return
	}
	c.swapListeners = append(c.swapListeners, fn)
}

// SetSwapEnabled gates swap intents. Disabling does not release a swap that
// is already held.
func (c *Controller) SetSwapEnabled(enabled bool) {
	if c == nil {
		return
	}
	c.swapEnabled = enabled
}
