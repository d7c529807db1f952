package entity

import (
	"fmt"

	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
	"github.com/milk9111/charmotion/prefabs"
)

// DustSpawner returns a builder for landing dust puffs from spec.
func DustSpawner(spec *prefabs.DustSpec) func(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return func(w *ecs.World, x, y float64) (ecs.Entity, error) {
		return NewDust(w, spec, x, y)
	}
}

// NewDust spawns a short-lived puff at a landing position.
func NewDust(w *ecs.World, spec *prefabs.DustSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("dust: nil spec")
	}

	dust := ecs.CreateEntity(w)
	if err := ecs.Add(w, dust, component.DustTagComponent.Kind(), &component.DustTag{}); err != nil {
		return 0, fmt.Errorf("dust: add tag: %w", err)
	}
	if err := addTransform(w, dust, x, y+spec.OffsetY, 0); err != nil {
		return 0, fmt.Errorf("dust: %w", err)
	}
	if err := ecs.Add(w, dust, component.RenderRectComponent.Kind(), renderRect(spec.Render)); err != nil {
		return 0, fmt.Errorf("dust: add render rect: %w", err)
	}
	if err := ecs.Add(w, dust, component.TTLComponent.Kind(), component.LifetimeTTL(spec.Lifetime)); err != nil {
		return 0, fmt.Errorf("dust: add ttl: %w", err)
	}
	return dust, nil
}
