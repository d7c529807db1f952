package motion

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/charmotion/curve"
)

type fakeBody struct {
	pos       cp.Vector
	vel       cp.Vector
	forces    []cp.Vector
	gravity   bool
	material  Material
	materials []Material
}

func newFakeBody() *fakeBody {
	return &fakeBody{gravity: true}
}

func (b *fakeBody) Position() cp.Vector       { return b.pos }
func (b *fakeBody) Velocity() cp.Vector       { return b.vel }
func (b *fakeBody) SetVelocity(v cp.Vector)   { b.vel = v }
func (b *fakeBody) AddForce(f cp.Vector)      { b.forces = append(b.forces, f) }
func (b *fakeBody) GravityEnabled() bool      { return b.gravity }
func (b *fakeBody) SetGravityEnabled(on bool) { b.gravity = on }
func (b *fakeBody) SetMaterial(m Material) {
	b.material = m
	b.materials = append(b.materials, m)
}

func (b *fakeBody) totalForce() cp.Vector {
	var sum cp.Vector
	for _, f := range b.forces {
		sum = sum.Add(f)
	}
	return sum
}

type shake struct {
	intensity float64
	duration  float64
}

type fakeEffects struct {
	landings []cp.Vector
	shakes   []shake
}

func (e *fakeEffects) SpawnLandingEffect(at cp.Vector) { e.landings = append(e.landings, at) }
func (e *fakeEffects) ShakeCamera(intensity, duration float64) {
	e.shakes = append(e.shakes, shake{intensity: intensity, duration: duration})
}

type explosion struct {
	radius   float64
	at       cp.Vector
	force    float64
	duration float64
}

type fakeExplodable struct {
	explosions []explosion
}

func (f *fakeExplodable) Explode(radius float64, at cp.Vector, force, duration float64) {
	f.explosions = append(f.explosions, explosion{radius: radius, at: at, force: force, duration: duration})
}

func newTestController(t *testing.T, mutate func(*Config)) (*Controller, *fakeBody, *fakeEffects) {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	body := newFakeBody()
	fx := &fakeEffects{}
	c, err := New(cfg, body, fx)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, body, fx
}

func constantCurves(cfg *Config) {
	cfg.JumpCurve = curve.Constant(1)
	cfg.DashCurve = curve.Constant(1)
}

func step(c *Controller, dt float64, n int) {
	for i := 0; i < n; i++ {
		c.Update(dt)
		c.FixedUpdate()
	}
}
