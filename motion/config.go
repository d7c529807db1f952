package motion

import (
	"fmt"

	"github.com/milk9111/charmotion/curve"
)

// Config is the tuning of one character. Durations are in seconds.
type Config struct {
	MovementSpeed float64
	MaxXVelocity  float64

	JumpForceUpMultiplier float64
	JumpCurve             curve.Curve
	MaxJumps              int
	FallSpeedMultiplier   float64
	JumpTime              float64

	DashDuration float64
	DashForce    float64
	DashCurve    curve.Curve
	DashCooldown float64
}

// DefaultConfig returns a single-jump tuning with flat curves.
func DefaultConfig() Config {
	return Config{
		MovementSpeed:         5,
		MaxXVelocity:          12,
		JumpForceUpMultiplier: 10,
		JumpCurve:             curve.Constant(1),
		MaxJumps:              1,
		FallSpeedMultiplier:   5,
		JumpTime:              0.5,
		DashDuration:          1,
		DashForce:             10,
		DashCurve:             curve.Constant(1),
		DashCooldown:          1,
	}
}

// Validate reports the first configuration problem. A controller never
// starts with an invalid config, so a missing curve surfaces at load time
// rather than as a jump that silently does nothing.
func (c Config) Validate() error {
	if c.JumpCurve == nil {
		return fmt.Errorf("motion: jump curve: %w", ErrNilCurve)
	}
	if c.DashCurve == nil {
		return fmt.Errorf("motion: dash curve: %w", ErrNilCurve)
	}
	if c.JumpTime <= 0 {
		return fmt.Errorf("motion: jump time %g must be positive: %w", c.JumpTime, ErrBadConfig)
	}
	if c.DashDuration <= 0 {
		return fmt.Errorf("motion: dash duration %g must be positive: %w", c.DashDuration, ErrBadConfig)
	}
	if c.DashCooldown < 0 {
		return fmt.Errorf("motion: dash cooldown %g must not be negative: %w", c.DashCooldown, ErrBadConfig)
	}
	if c.MaxJumps < 0 {
		return fmt.Errorf("motion: max jumps %d must not be negative: %w", c.MaxJumps, ErrBadConfig)
	}
	if c.MaxXVelocity < 0 {
		return fmt.Errorf("motion: max x velocity %g must not be negative: %w", c.MaxXVelocity, ErrBadConfig)
	}
	return nil
}
