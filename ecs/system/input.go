package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
)

const zoomStep = 1.1

type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	step := inpututil.IsKeyJustPressed(ebiten.KeyPeriod)
	reset := inpututil.IsKeyJustPressed(ebiten.KeyR)
	copySnap := inpututil.IsKeyJustPressed(ebiten.KeyC)
	debug := inpututil.IsKeyJustPressed(ebiten.KeyF3)

	zoom := 1.0
	if _, dy := ebiten.Wheel(); dy > 0 {
		zoom = zoomStep
	} else if dy < 0 {
		zoom = 1 / zoomStep
	}

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		id := ids[0]
		pause = pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		reset = reset || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
		step = step || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		input.TogglePause = pause
		input.Step = step
		input.Reset = reset
		input.Copy = copySnap
		input.ToggleDebug = debug
		input.Zoom = zoom
	})

	if zoom == 1 {
		return
	}
	ecs.ForEach(w, component.CameraComponent, func(_ ecs.Entity, cam *component.Camera) {
		cam.Zoom *= zoom
	})
}
