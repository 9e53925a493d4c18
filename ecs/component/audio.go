package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio is the collision sound of the simulation entity.
type Audio struct {
	Player *audio.Player
	Volume float64
	Play   bool
	// LastTick is the SimStats tick that last triggered the sound.
	LastTick uint64
}

var AudioComponent = NewComponent[Audio]()
