package motion

import (
	"testing"
)

func TestDriveForceRespectsSpeedCap(t *testing.T) {
	cases := []struct {
		name      string
		vx        float64
		input     float64
		wantForce float64
	}{
		{"below_cap", 3, 1, 5},
		{"below_cap_negative", -11.9, -1, -5},
		{"at_cap", 12, 1, 0},
		{"above_cap_same_direction", 15, 1, 0},
		{"above_cap_opposite_direction", -15, 1, 0},
		{"partial_input", 0, 0.5, 2.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, body, _ := newTestController(t, func(cfg *Config) {
				cfg.MovementSpeed = 5
				cfg.MaxXVelocity = 12
			})
			c.Move(tc.input)
			body.vel.X = tc.vx

			c.FixedUpdate()
			if got := body.totalForce().X; got != tc.wantForce {
				t.Fatalf("drive force = %v, want %v", got, tc.wantForce)
			}
			if body.vel.X != tc.vx {
				t.Fatalf("integrator must not change velocity directly")
			}
		})
	}
}

func TestFastFallForce(t *testing.T) {
	c, body, _ := newTestController(t, func(cfg *Config) { cfg.FallSpeedMultiplier = 5 })
	c.FixedUpdate()
	if got := body.totalForce().Y; got != 0 {
		t.Fatalf("no fall force expected before fast fall, got %v", got)
	}

	c.state.FallFaster = true
	body.forces = nil
	c.FixedUpdate()
	c.FixedUpdate()
	if got := body.totalForce().Y; got != -10 {
		t.Fatalf("expected -5 per step, got total %v", got)
	}
}

func TestIntegratorSuppressedWhileDashing(t *testing.T) {
	c, body, _ := newTestController(t, nil)
	c.Move(1)
	c.state.FallFaster = true
	c.Dash()
	c.Update(0.1)

	c.FixedUpdate()
	if len(body.forces) != 0 {
		t.Fatalf("expected no forces during dash, got %v", body.forces)
	}

	step(c, 0.1, 9)
	body.forces = nil
	c.FixedUpdate()
	if len(body.forces) == 0 {
		t.Fatalf("integrator should resume after the dash")
	}
}
