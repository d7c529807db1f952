// Package scene assembles the playground world: systems in frame order,
// the level, the camera and the player.
package scene

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
	"github.com/milk9111/charmotion/ecs/entity"
	"github.com/milk9111/charmotion/ecs/system"
	"github.com/milk9111/charmotion/motion"
	"github.com/milk9111/charmotion/prefabs"
)

type Options struct {
	// Headless skips device input. Intents arrive through Queue.
	Headless bool
	Level    string
	// Step overrides the frame delta in seconds.
	Step           float64
	DebugExplosion bool
}

type Scene struct {
	World  *ecs.World
	Player ecs.Entity
	Camera ecs.Entity

	Physics *system.PhysicsSystem
	Render  *system.RenderSystem
}

func New(opts Options) (*Scene, error) {
	if opts.Level == "" {
		opts.Level = "level.yaml"
	}

	dustSpec, err := prefabs.LoadDustSpec()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	diamondSpec, err := prefabs.LoadDiamondSpec()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	levelSpec, err := prefabs.LoadLevelSpec(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	w := ecs.NewWorld()
	s := &Scene{
		World:   w,
		Physics: system.NewPhysicsSystem(),
		Render:  system.NewRenderSystem(),
	}

	motionSystem := system.NewMotionSystem()
	if opts.Step > 0 {
		motionSystem.SetStep(opts.Step)
		s.Physics.SetStep(opts.Step)
	}
	explosions := system.NewExplosionSystem(diamondSpec.Shards)
	explosions.Debug = opts.DebugExplosion

	if !opts.Headless {
		w.AddSystem(system.NewInputSystem())
	}
	w.AddSystem(system.NewIntentSystem())
	w.AddSystem(motionSystem)
	w.AddSystem(s.Physics)
	w.AddSystem(system.NewContactSystem())
	w.AddSystem(explosions)
	w.AddSystem(system.NewLandingEffectSystem(entity.DustSpawner(dustSpec)))
	w.AddSystem(system.NewTTLSystem())
	w.AddSystem(system.NewCameraSystem())

	if err := entity.LoadLevelToWorld(w, levelSpec, diamondSpec); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if s.Camera, err = entity.NewCamera(w); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if s.Player, err = entity.NewPlayerFromSpec(w, playerSpec, levelSpec.Spawn.X, levelSpec.Spawn.Y); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	return s, nil
}

// Step runs one frame.
func (s *Scene) Step() {
	if s == nil {
		return
	}
	s.World.Update()
}

// Controller returns the player's controller, or nil before the first
// physics step has created its body.
func (s *Scene) Controller() *motion.Controller {
	if s == nil {
		return nil
	}
	m, ok := ecs.Get(s.World, s.Player, component.MotionComponent.Kind())
	if !ok {
		return nil
	}
	return m.Controller
}

// PlayerTransform returns the player's current transform.
func (s *Scene) PlayerTransform() (component.Transform, bool) {
	t, ok := ecs.Get(s.World, s.Player, component.TransformComponent.Kind())
	if !ok {
		return component.Transform{}, false
	}
	return *t, true
}

// PlayerVelocity returns the velocity of the player's body.
func (s *Scene) PlayerVelocity() (cp.Vector, bool) {
	body, ok := ecs.Get(s.World, s.Player, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil {
		return cp.Vector{}, false
	}
	return body.Body.Velocity(), true
}

// Queue schedules an intent for the player's next intent pass.
func (s *Scene) Queue(in motion.Intent) {
	if s == nil {
		return
	}
	q, ok := ecs.Get(s.World, s.Player, component.IntentQueueComponent.Kind())
	if !ok {
		return
	}
	q.Pending = append(q.Pending, in)
}

// ReloadTuning re-reads the player prefab and stages its motion tuning for
// the next frame. The running tuning is kept when the prefab is invalid.
func (s *Scene) ReloadTuning() error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	cfg, err := spec.Motion.Build()
	if err != nil {
		return fmt.Errorf("scene: reload tuning: %w", err)
	}
	m, ok := ecs.Get(s.World, s.Player, component.MotionComponent.Kind())
	if !ok {
		return fmt.Errorf("scene: reload tuning: player has no motion")
	}
	m.Pending = &cfg
	return nil
}
