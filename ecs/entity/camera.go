package entity

import (
	"fmt"

	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
	"github.com/icmeyer/boing/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := w.CreateEntity()

	if err := ecs.Add(w, camera, component.TransformComponent, component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent, component.Camera{
		TargetName: spec.Target,
		Zoom:       zoom,
		Smoothness: spec.Smoothness,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
