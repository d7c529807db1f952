package entity

import (
	"fmt"

	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
	"github.com/milk9111/charmotion/prefabs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec, spec.Transform.X, spec.Transform.Y)
}

// NewPlayerFromSpec builds a controllable character at (x, y). The motion
// tuning is resolved and validated here so a bad prefab fails before the
// entity exists.
func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	cfg, err := spec.Motion.Build()
	if err != nil {
		return 0, fmt.Errorf("player: motion config: %w", err)
	}

	player := ecs.CreateEntity(w)
	fail := func(what string, err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, player)
		return 0, fmt.Errorf("player: %s: %w", what, err)
	}

	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return fail("add player tag", err)
	}
	if err := addTransform(w, player, x, y, spec.Transform.Rotation); err != nil {
		return fail("transform", err)
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), physicsBody(spec.Collider)); err != nil {
		return fail("add physics body", err)
	}
	if err := ecs.Add(w, player, component.RenderRectComponent.Kind(), renderRect(spec.Render)); err != nil {
		return fail("add render rect", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return fail("add input", err)
	}
	if err := ecs.Add(w, player, component.IntentQueueComponent.Kind(), &component.IntentQueue{}); err != nil {
		return fail("add intent queue", err)
	}
	if err := ecs.Add(w, player, component.GroundContactComponent.Kind(), &component.GroundContact{}); err != nil {
		return fail("add ground contact", err)
	}
	if err := ecs.Add(w, player, component.MotionComponent.Kind(), &component.Motion{Config: cfg}); err != nil {
		return fail("add motion", err)
	}

	return player, nil
}
