package entity

import (
	"fmt"
	"image/color"

	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
	"github.com/icmeyer/boing/ecs/system"
	"github.com/icmeyer/boing/physics"
	"github.com/icmeyer/boing/prefabs"
)

var (
	movingFill     = color.NRGBA{R: 0x1e, G: 0x3d, B: 0x6f, A: 0xff}
	stationaryFill = color.NRGBA{R: 0x69, G: 0x69, B: 0x69, A: 0xff}
)

// NewBody creates an entity drawing a new shape and links the two through the
// shape's handle.
func NewBody(w *ecs.World, spec prefabs.BodySpec, layer int) (ecs.Entity, *physics.Shape, error) {
	shape, err := spec.Shape()
	if err != nil {
		return 0, nil, fmt.Errorf("body %q: %w", spec.Name, err)
	}

	e := w.CreateEntity()
	shape.SetHandle(system.HandleOf(e))

	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{
		X:      spec.X,
		Y:      spec.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, nil, fmt.Errorf("body %q: add transform: %w", spec.Name, err)
	}

	if err := ecs.Add(w, e, component.BodyComponent, component.Body{Shape: shape}); err != nil {
		return 0, nil, fmt.Errorf("body %q: add body: %w", spec.Name, err)
	}

	fill := movingFill
	if spec.Stationary {
		fill = stationaryFill
	}
	if spec.Color != nil {
		fill = spec.Color.NRGBA
	}
	if err := ecs.Add(w, e, component.RenderComponent, component.Render{
		Fill:    fill,
		Outline: darken(fill),
		Layer:   layer,
	}); err != nil {
		return 0, nil, fmt.Errorf("body %q: add render: %w", spec.Name, err)
	}

	return e, shape, nil
}

func darken(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
