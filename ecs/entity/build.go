package entity

import (
	"fmt"

	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
	"github.com/milk9111/charmotion/prefabs"
)

func physicsBody(c prefabs.ColliderSpec) *component.PhysicsBody {
	return &component.PhysicsBody{
		Width:         c.Width,
		Height:        c.Height,
		Mass:          c.Mass,
		Friction:      c.Friction,
		AirFriction:   c.AirFriction,
		Elasticity:    c.Elasticity,
		Static:        c.Static,
		FixedRotation: c.FixedRotation,
	}
}

func renderRect(r prefabs.RenderSpec) *component.RenderRect {
	return &component.RenderRect{
		Width:  r.Width,
		Height: r.Height,
		Color:  r.RGBA(defaultColor),
		Layer:  r.Layer,
	}
}

func addTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Rotation: rotation}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	return nil
}
