package entity

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/physics"
	"github.com/icmeyer/boing/prefabs"
)

var ErrNilWorld = errors.New("build scene: world is nil")

// BuildScene creates the camera, the simulation entity and one entity per
// body of spec, and returns the physics scene over those bodies. Shapes keep
// the order of spec.Bodies. Moving bodies draw above stationary ones.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec, player *audio.Player) (*physics.Scene, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	if spec == nil {
		return nil, errors.New("build scene: spec is nil")
	}

	scene := physics.NewScene()
	scene.Config = spec.Physics.Config()

	for i, b := range spec.Bodies {
		layer := 1
		if b.Stationary {
			layer = 0
		}
		_, shape, err := NewBody(w, b, layer)
		if err != nil {
			return nil, fmt.Errorf("build scene %q: body %d: %w", spec.Name, i, err)
		}
		scene.Add(shape)
	}

	if _, err := NewCamera(w, spec.Camera); err != nil {
		return nil, fmt.Errorf("build scene %q: %w", spec.Name, err)
	}
	if _, err := NewSimulation(w, player); err != nil {
		return nil, fmt.Errorf("build scene %q: %w", spec.Name, err)
	}

	return scene, nil
}
