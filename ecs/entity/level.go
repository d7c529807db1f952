package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
	"github.com/milk9111/charmotion/prefabs"
)

var defaultColor = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

// LoadLevelToWorld creates the static platforms and the diamonds of a
// level.
func LoadLevelToWorld(w *ecs.World, lvl *prefabs.LevelSpec, diamond *prefabs.DiamondSpec) error {
	if lvl == nil {
		return fmt.Errorf("level: nil spec")
	}
	for i, p := range lvl.Platforms {
		if _, err := NewPlatform(w, p); err != nil {
			return fmt.Errorf("level %s: platform %d: %w", lvl.Name, i, err)
		}
	}
	if diamond == nil {
		return nil
	}
	for i, at := range lvl.Diamonds {
		if _, err := NewDiamond(w, diamond, at.X, at.Y); err != nil {
			return fmt.Errorf("level %s: diamond %d: %w", lvl.Name, i, err)
		}
	}
	return nil
}

func NewPlatform(w *ecs.World, p prefabs.PlatformSpec) (ecs.Entity, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return 0, fmt.Errorf("platform size %gx%g must be positive", p.Width, p.Height)
	}

	platform := ecs.CreateEntity(w)
	if err := ecs.Add(w, platform, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		return 0, fmt.Errorf("add ground tag: %w", err)
	}
	if err := addTransform(w, platform, p.Transform.X, p.Transform.Y, 0); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, platform, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    p.Width,
		Height:   p.Height,
		Friction: p.Friction,
		Static:   true,
	}); err != nil {
		return 0, fmt.Errorf("add physics body: %w", err)
	}
	if err := ecs.Add(w, platform, component.RenderRectComponent.Kind(), renderRect(prefabs.RenderSpec{
		Width:  p.Width,
		Height: p.Height,
		Color:  p.Color,
	})); err != nil {
		return 0, fmt.Errorf("add render rect: %w", err)
	}
	return platform, nil
}

// NewDiamond places an explodable crystal at (x, y).
func NewDiamond(w *ecs.World, spec *prefabs.DiamondSpec, x, y float64) (ecs.Entity, error) {
	diamond := ecs.CreateEntity(w)
	if err := ecs.Add(w, diamond, component.ExplodableComponent.Kind(), &component.Explodable{}); err != nil {
		return 0, fmt.Errorf("diamond: add explodable: %w", err)
	}
	if err := addTransform(w, diamond, x, y, 0); err != nil {
		return 0, fmt.Errorf("diamond: %w", err)
	}
	if err := ecs.Add(w, diamond, component.PhysicsBodyComponent.Kind(), physicsBody(spec.Collider)); err != nil {
		return 0, fmt.Errorf("diamond: add physics body: %w", err)
	}
	if err := ecs.Add(w, diamond, component.RenderRectComponent.Kind(), renderRect(spec.Render)); err != nil {
		return 0, fmt.Errorf("diamond: add render rect: %w", err)
	}
	return diamond, nil
}
