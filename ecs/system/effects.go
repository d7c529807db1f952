package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/charmotion/common"
	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
)

// worldEffects turns controller presentation requests into request
// components for the landing effect and camera systems.
type worldEffects struct {
	w *ecs.World
}

func (fx worldEffects) SpawnLandingEffect(at cp.Vector) {
	e := ecs.CreateEntity(fx.w)
	_ = ecs.Add(fx.w, e, component.LandingEffectRequestComponent.Kind(), &component.LandingEffectRequest{X: at.X, Y: at.Y})
}

func (fx worldEffects) ShakeCamera(intensity, duration float64) {
	cam, ok := fx.w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	_ = ecs.Add(fx.w, cam, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{
		Frames:    common.SecondsToFrames(duration),
		Intensity: intensity,
	})
}

// explodableEntity lets the controller explode an ECS entity by attaching an
// explosion request to it.
type explodableEntity struct {
	w *ecs.World
	e ecs.Entity
}

func (x explodableEntity) Explode(radius float64, at cp.Vector, force, duration float64) {
	_ = ecs.Add(x.w, x.e, component.ExplosionRequestComponent.Kind(), &component.ExplosionRequest{
		Radius:   radius,
		X:        at.X,
		Y:        at.Y,
		Force:    force,
		Duration: duration,
	})
}
