package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
	"github.com/icmeyer/boing/physics"
	"github.com/jakecoffman/cp"
)

const outlineWidth = 2

var defaultFill = color.NRGBA{R: 0x1e, G: 0x3d, B: 0x6f, A: 0xff}

// RenderSystem draws every entity with a Transform, Body and Render
// component. Shapes are drawn at their Transform, which the physics system
// keeps in step with the body.
type RenderSystem struct {
	Background color.Color
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{Background: color.NRGBA{R: 0xf4, G: 0xf1, B: 0xe8, A: 0xff}}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.Background != nil {
		screen.Fill(r.Background)
	}

	b := screen.Bounds()
	view := ViewOf(w, float64(b.Dx()), float64(b.Dy()))

	entities := w.Query(component.TransformComponent.Kind(), component.BodyComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if rc, ok := ecs.Get(w, entities[i], component.RenderComponent); ok {
			li = rc.Layer
		}
		lj := 0
		if rc, ok := ecs.Get(w, entities[j], component.RenderComponent); ok {
			lj = rc.Layer
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		body, _ := ecs.Get(w, e, component.BodyComponent)
		if body.Shape == nil {
			continue
		}
		rc, ok := ecs.Get(w, e, component.RenderComponent)
		if !ok {
			rc = component.Render{Fill: defaultFill}
		}
		drawShape(screen, view, body.Shape, cp.Vector{X: t.X, Y: t.Y}, scaleOr1(t.ScaleX), scaleOr1(t.ScaleY), rc)
	}
}

func drawShape(screen *ebiten.Image, view View, s *physics.Shape, at cp.Vector, sx, sy float64, rc component.Render) {
	x, y := view.ToScreen(at)
	switch s.Kind {
	case physics.Circle:
		radius := view.Scale(s.Radius * sx)
		vector.FillCircle(screen, x, y, radius, rc.Fill, true)
		if rc.Outline.A > 0 {
			vector.StrokeCircle(screen, x, y, radius, outlineWidth, rc.Outline, true)
		}
	case physics.Rectangle:
		width, height := view.Scale(s.Width*sx), view.Scale(s.Height*sy)
		left, top := x-width/2, y-height/2
		vector.FillRect(screen, left, top, width, height, rc.Fill, false)
		if rc.Outline.A > 0 {
			vector.StrokeRect(screen, left, top, width, height, outlineWidth, rc.Outline, false)
		}
	}
}

func scaleOr1(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
