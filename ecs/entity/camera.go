package entity

import (
	"fmt"

	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
	"github.com/milk9111/charmotion/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := addTransform(w, camera, cameraSpec.Transform.X, cameraSpec.Transform.Y, 0); err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}

	smooth := cameraSpec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	zoom := cameraSpec.Zoom
	if zoom == 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Target:     cameraSpec.Target,
		Zoom:       zoom,
		Smoothness: smooth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}

	return camera, nil
}
