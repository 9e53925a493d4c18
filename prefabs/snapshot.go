package prefabs

import (
	"github.com/icmeyer/boing/physics"
	"gopkg.in/yaml.v3"
)

// Snapshot is a yaml dump of a scene's kinematic state between ticks.
type Snapshot struct {
	Scene  string      `yaml:"scene"`
	Tick   uint64      `yaml:"tick"`
	Bodies []BodyState `yaml:"bodies"`
}

type BodyState struct {
	Name       string  `yaml:"name,omitempty"`
	Kind       string  `yaml:"kind"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	VX         float64 `yaml:"vx"`
	VY         float64 `yaml:"vy"`
	Stationary bool    `yaml:"stationary,omitempty"`
}

// NewSnapshot reads every shape of scene in order.
func NewSnapshot(name string, tick uint64, scene *physics.Scene) Snapshot {
	snap := Snapshot{Scene: name, Tick: tick}
	if scene == nil {
		return snap
	}
	snap.Bodies = make([]BodyState, 0, len(scene.Shapes))
	for _, s := range scene.Shapes {
		p, v := s.Position(), s.Velocity()
		snap.Bodies = append(snap.Bodies, BodyState{
			Name:       s.Name,
			Kind:       s.Kind.String(),
			X:          p.X,
			Y:          p.Y,
			VX:         v.X,
			VY:         v.Y,
			Stationary: s.IsStationary(),
		})
	}
	return snap
}

func (s Snapshot) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
