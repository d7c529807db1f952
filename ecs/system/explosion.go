package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
)

// ExplosionSystem resolves explosion requests: bodies inside the radius get
// an impulse away from the blast point that falls off with distance, and
// the exploded entity breaks into shards that expire after the request's
// duration.
type ExplosionSystem struct {
	// Shards is the number of debris pieces spawned per explosion.
	Shards int
	Debug  bool
}

func NewExplosionSystem(shards int) *ExplosionSystem {
	return &ExplosionSystem{Shards: shards}
}

func (s *ExplosionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, e := range w.Query(component.ExplosionRequestComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.ExplosionRequestComponent.Kind())
		if !ok {
			continue
		}
		ecs.Remove(w, e, component.ExplosionRequestComponent.Kind())

		if ex, ok := ecs.Get(w, e, component.ExplodableComponent.Kind()); ok {
			if ex.Exploded {
				continue
			}
			ex.Exploded = true
		}

		center := cp.Vector{X: req.X, Y: req.Y}
		hit := s.applyImpulses(w, e, center, req)
		s.shatter(w, e, req)
		if s.Debug {
			log.Printf("explosion: %s at (%.2f, %.2f) pushed %d bodies", e, req.X, req.Y, hit)
		}
	}
}

func (s *ExplosionSystem) applyImpulses(w *ecs.World, source ecs.Entity, center cp.Vector, req *component.ExplosionRequest) int {
	hit := 0
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody) {
		if e == source || body.Static || body.Body == nil {
			return
		}
		impulse, ok := blastImpulse(center, body.Body.Position(), req.Radius, req.Force)
		if !ok {
			return
		}
		body.Body.ApplyImpulseAtWorldPoint(impulse, body.Body.Position())
		hit++
	})
	return hit
}

// blastImpulse is the impulse on a body at pos from a blast at center. It
// is zero at the radius and force at the center.
func blastImpulse(center, pos cp.Vector, radius, force float64) (cp.Vector, bool) {
	if radius <= 0 {
		return cp.Vector{}, false
	}
	d := pos.Sub(center)
	dist := d.Length()
	if dist >= radius {
		return cp.Vector{}, false
	}
	dir := cp.Vector{X: 0, Y: 1}
	if dist > 1e-6 {
		dir = d.Mult(1 / dist)
	}
	return dir.Mult(force * (1 - dist/radius)), true
}

// shatter replaces the exploded entity with short-lived shards flying out
// from its center.
func (s *ExplosionSystem) shatter(w *ecs.World, e ecs.Entity, req *component.ExplosionRequest) {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return
	}
	rect, _ := ecs.Get(w, e, component.RenderRectComponent.Kind())
	origin := cp.Vector{X: transform.X, Y: transform.Y}

	for i := 0; i < s.Shards; i++ {
		angle := 2 * math.Pi * float64(i) / float64(s.Shards)
		dir := cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}
		// Shards are light, so the impulse doubles as their launch speed.
		speed := req.Force * req.Radius
		shard := ecs.CreateEntity(w)
		pos := origin.Add(dir.Mult(0.2))
		_ = ecs.Add(w, shard, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Rotation: angle})
		_ = ecs.Add(w, shard, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:    0.25,
			Height:   0.25,
			Mass:     0.1,
			Friction: 0.6,
			VX:       dir.X * speed,
			VY:       dir.Y * speed,
		})
		_ = ecs.Add(w, shard, component.TTLComponent.Kind(), component.LifetimeTTL(req.Duration))
		if rect != nil {
			_ = ecs.Add(w, shard, component.RenderRectComponent.Kind(), &component.RenderRect{
				Width:  0.25,
				Height: 0.25,
				Color:  rect.Color,
				Layer:  rect.Layer,
			})
		}
	}

	ecs.DestroyEntity(w, e)
}
