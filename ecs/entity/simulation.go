package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
)

const collisionVolume = 0.5

// NewSimulation creates the entity holding run statistics, viewer input and,
// when player is not nil, the collision sound.
func NewSimulation(w *ecs.World, player *audio.Player) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.SimStatsComponent, component.SimStats{}); err != nil {
		return 0, fmt.Errorf("simulation: add stats: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		return 0, fmt.Errorf("simulation: add input: %w", err)
	}
	if player == nil {
		return e, nil
	}
	if err := ecs.Add(w, e, component.AudioComponent, component.Audio{
		Player: player,
		Volume: collisionVolume,
	}); err != nil {
		return 0, fmt.Errorf("simulation: add audio: %w", err)
	}
	return e, nil
}
