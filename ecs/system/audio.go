package system

import (
	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
)

// AudioSystem plays the collision sound on ticks that resolved a collision.
// It runs after StatsSystem.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent, func(e ecs.Entity, audioComp *component.Audio) {
		if stats, ok := ecs.Get(w, e, component.SimStatsComponent); ok {
			if stats.Tick != audioComp.LastTick && stats.Last.Collisions > 0 {
				audioComp.Play = true
			}
			audioComp.LastTick = stats.Tick
		}

		if !audioComp.Play {
			return
		}
		audioComp.Play = false

		player := audioComp.Player
		if player == nil {
			return
		}
		player.SetVolume(audioComp.Volume)
		if err := player.Rewind(); err != nil {
			return
		}
		player.Play()
	})
}
