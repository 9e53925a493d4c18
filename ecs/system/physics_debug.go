package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
	"github.com/icmeyer/boing/physics"
	"github.com/jakecoffman/cp"
)

const (
	debugNormalLength = 12
	debugDotSize      = 4
)

var (
	debugOutline  = cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	debugNormal   = cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
	debugVelocity = cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
)

// DrawPhysicsDebug outlines the world vertices of every shape in scene, its
// face normals at the edge midpoints and its velocity.
func DrawPhysicsDebug(scene *physics.Scene, w *ecs.World, screen *ebiten.Image) {
	if scene == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()
	d := &physicsDebugDrawer{screen: screen, view: ViewOf(w, float64(bounds.Dx()), float64(bounds.Dy()))}

	for _, s := range scene.Shapes {
		verts := s.WorldVertices()
		d.drawPolygon(verts, debugOutline)

		normals := s.FaceNormals()
		for i, n := range normals {
			a, b := verts[i], verts[(i+1)%len(verts)]
			mid := a.Lerp(b, 0.5)
			d.drawLine(mid, mid.Add(n.Mult(debugNormalLength/d.view.Zoom)), debugNormal)
		}

		if !s.IsStationary() {
			p := s.Position()
			d.drawLine(p, p.Add(s.Velocity().Mult(0.1)), debugVelocity)
		}
		d.drawDot(s.Position(), debugOutline)
	}
}

// DrawStatsDebug prints the SimStats of w in the top left corner.
func DrawStatsDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	e, ok := w.First(component.SimStatsComponent.Kind())
	if !ok {
		return
	}
	stats, _ := ecs.Get(w, e, component.SimStatsComponent)
	text := fmt.Sprintf("Tick: %d\nCollisions: %d (total %d)\nMoved: %d\nCoincident: %d\nMassless: %d\nUnbound: %d\nTPS: %.1f",
		stats.Tick, stats.Last.Collisions, stats.TotalCollisions, stats.Last.Moved,
		stats.Last.Coincident, stats.Last.Massless, stats.Last.Unbound, ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   View
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.view.ToScreen(a)
	x2, y2 := d.view.ToScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, toNRGBA(c), true)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawDot(pos cp.Vector, c cp.FColor) {
	half := debugDotSize / 2 / d.view.Zoom
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, c)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
