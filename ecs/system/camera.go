package system

import (
	"github.com/icmeyer/boing/common"
	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
	"github.com/jakecoffman/cp"
)

// CameraSystem eases the camera transform toward its target body.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
		cs.targetEntity = 0
	}

	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok || camComp.TargetName == "" {
		return
	}

	if !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findBodyByName(w, camComp.TargetName)
	}

	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent)
	if !ok {
		return
	}

	t := 1.0
	if camComp.Smoothness > 0 && camComp.Smoothness < 1 {
		t = camComp.Smoothness
	}
	camTransform.X = common.Lerp(camTransform.X, target.X, t)
	camTransform.Y = common.Lerp(camTransform.Y, target.Y, t)
	if err := ecs.Add(w, cs.camEntity, component.TransformComponent, camTransform); err != nil {
		panic("camera system: update transform: " + err.Error())
	}
}

func findBodyByName(w *ecs.World, name string) ecs.Entity {
	for _, e := range w.Query(component.BodyComponent.Kind()) {
		body, _ := ecs.Get(w, e, component.BodyComponent)
		if body.Shape != nil && body.Shape.Name == name {
			return e
		}
	}
	return 0
}

// View maps world coordinates (y up) to screen pixels (y down), centred on
// the camera.
type View struct {
	X, Y          float64
	Zoom          float64
	Width, Height float64
}

// ViewOf reads the camera entity of w. Without a camera the view is centred
// on the origin at zoom 1.
func ViewOf(w *ecs.World, width, height float64) View {
	v := View{Zoom: 1, Width: width, Height: height}
	cam, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, cam, component.TransformComponent); ok {
		v.X, v.Y = t.X, t.Y
	}
	if c, ok := ecs.Get(w, cam, component.CameraComponent); ok && c.Zoom > 0 {
		v.Zoom = c.Zoom
	}
	return v
}

func (v View) ToScreen(p cp.Vector) (float32, float32) {
	x := (p.X-v.X)*v.Zoom + v.Width/2
	y := v.Height/2 - (p.Y-v.Y)*v.Zoom
	return float32(x), float32(y)
}

func (v View) Scale(length float64) float32 {
	return float32(length * v.Zoom)
}
