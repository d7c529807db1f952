package motion

import (
	"fmt"
	"math"
	"strings"
)

// IntentKind names a discrete player action.
type IntentKind int

const (
	IntentMove IntentKind = iota
	IntentMoveCanceled
	IntentJump
	IntentDash
	IntentInteract
	IntentSwapPerformed
	IntentSwapCanceled
	IntentInterrupt
	IntentSwapLock
	IntentSwapUnlock
)

var intentNames = map[IntentKind]string{
	IntentMove:          "move",
	IntentMoveCanceled:  "move_canceled",
	IntentJump:          "jump",
	IntentDash:          "dash",
	IntentInteract:      "interact",
	IntentSwapPerformed: "swap_performed",
	IntentSwapCanceled:  "swap_canceled",
	IntentInterrupt:     "interrupt",
	IntentSwapLock:      "swap_lock",
	IntentSwapUnlock:    "swap_unlock",
}

func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseIntentKind is the inverse of IntentKind.String.
func ParseIntentKind(s string) (IntentKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range intentNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("motion: unknown intent %q", s)
}

// Intent is one edge-triggered action. Axis is only read by IntentMove.
type Intent struct {
	Kind IntentKind
	Axis float64
}

var intentHandlers = map[IntentKind]func(c *Controller, in Intent){
	IntentMove:          func(c *Controller, in Intent) { c.Move(in.Axis) },
	IntentMoveCanceled:  func(c *Controller, _ Intent) { c.MoveCanceled() },
	IntentJump:          func(c *Controller, _ Intent) { c.Jump() },
	IntentDash:          func(c *Controller, _ Intent) { c.Dash() },
	IntentInteract:      func(c *Controller, _ Intent) { c.Interact() },
	IntentSwapPerformed: func(c *Controller, _ Intent) { c.SwapPerformed() },
	IntentSwapCanceled:  func(c *Controller, _ Intent) { c.SwapCanceled() },
	IntentInterrupt:     func(c *Controller, _ Intent) { c.Interrupt() },
	IntentSwapLock:      func(c *Controller, _ Intent) { c.SetSwapEnabled(false) },
	IntentSwapUnlock:    func(c *Controller, _ Intent) { c.SetSwapEnabled(true) },
}

// Handle dispatches an intent. Unknown kinds are ignored.
func (c *Controller) Handle(in Intent) {
	if c == nil {
		return
	}
	if h, ok := intentHandlers[in.Kind]; ok {
		h(c, in)
	}
}

// Move sets the horizontal input, clamped to [-1,1]. NaN counts as 0.
// Non-zero input is latched as the dash direction and turns the character.
func (c *Controller) Move(axis float64) {
	if c == nil {
		return
	}
	if math.IsNaN(axis) {
		axis = 0
	} else if axis > 1 {
		axis = 1
	} else if axis < -1 {
		axis = -1
	}
	c.state.HorizontalInput = axis
	if axis != 0 {
		c.state.DashDirection = axis
	}
	if axis > 0 {
		c.state.Facing = FacingRight
	} else if axis < 0 {
		c.state.Facing = FacingLeft
	}
}

// MoveCanceled clears the horizontal input. Facing and dash direction keep
// their last values.
func (c *Controller) MoveCanceled() {
	if c == nil {
		return
	}
	c.state.HorizontalInput = 0
}

func (c *Controller) Interact() {
	if c == nil {
		return
	}
	for _, fn := range c.interactListeners {
		fn()
	}
}

func (c *Controller) SwapPerformed() {
	if c == nil || !c.swapEnabled || c.state.WantsToSwap {
		return
	}
	c.setSwap(true)
}

func (c *Controller) SwapCanceled() {
	if c == nil || !c.state.WantsToSwap {
		return
	}
	c.setSwap(false)
}

func (c *Controller) setSwap(wants bool) {
	c.state.WantsToSwap = wants
	for _, fn := range c.swapListeners {
		fn(wants)
	}
}
