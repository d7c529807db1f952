package system

import (
	"math"

	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera transform toward its target and advances any
// running shake.
func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if req, ok := ecs.Get(w, cs.camEntity, component.CameraShakeRequestComponent.Kind()); ok {
		camComp.ShakeFrames = req.Frames
		camComp.ShakeTotal = req.Frames
		camComp.ShakeIntensity = req.Intensity
		ecs.Remove(w, cs.camEntity, component.CameraShakeRequestComponent.Kind())
	}
	advanceShake(camComp)

	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, camComp.Target)
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	k := camComp.Smoothness
	if k <= 0 || k > 1 {
		k = 1
	}
	camTransform.X += (target.X - camTransform.X) * k
	camTransform.Y += (target.Y - camTransform.Y) * k
}

// advanceShake moves the shake offset one frame along a decaying
// oscillation.
func advanceShake(c *component.Camera) {
	if c.ShakeFrames <= 0 || c.ShakeTotal <= 0 {
		c.ShakeFrames = 0
		c.ShakeX, c.ShakeY = 0, 0
		return
	}
	elapsed := float64(c.ShakeTotal - c.ShakeFrames)
	decay := float64(c.ShakeFrames) / float64(c.ShakeTotal)
	amp := c.ShakeIntensity * decay
	c.ShakeX = amp * math.Sin(elapsed*2.9)
	c.ShakeY = amp * math.Cos(elapsed*3.7)
	c.ShakeFrames--
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" || name == "" {
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
