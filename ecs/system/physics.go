package system

import (
	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
	"github.com/icmeyer/boing/physics"
	"github.com/jakecoffman/cp"
)

// TickRate is the fixed number of simulation steps per second.
const TickRate = physics.TickRate

// HandleOf converts an entity to the opaque handle stored on its shape.
func HandleOf(e ecs.Entity) physics.Handle {
	return physics.Handle(e)
}

// EntityOf is the inverse of HandleOf.
func EntityOf(h physics.Handle) ecs.Entity {
	return ecs.Entity(h)
}

// TransformSink moves the Transform of the entity behind a shape handle.
type TransformSink struct {
	World *ecs.World
}

func (s TransformSink) Translate(h physics.Handle, delta cp.Vector) bool {
	e := EntityOf(h)
	t, ok := ecs.Get(s.World, e, component.TransformComponent)
	if !ok {
		return false
	}
	t.X += delta.X
	t.Y += delta.Y
	return ecs.Add(s.World, e, component.TransformComponent, t) == nil
}

// PhysicsSystem advances a physics scene once per world update and publishes
// the step report as a StepEventType event.
type PhysicsSystem struct {
	scene  *physics.Scene
	dt     float64
	paused bool
	step   bool
}

func NewPhysicsSystem(scene *physics.Scene, dt float64) *PhysicsSystem {
	if dt <= 0 {
		dt = 1.0 / TickRate
	}
	return &PhysicsSystem{scene: scene, dt: dt}
}

func (ps *PhysicsSystem) Scene() *physics.Scene {
	if ps == nil {
		return nil
	}
	return ps.scene
}

func (ps *PhysicsSystem) Paused() bool {
	return ps != nil && ps.paused
}

func (ps *PhysicsSystem) SetPaused(paused bool) {
	if ps == nil {
		return
	}
	ps.paused = paused
}

// StepOnce advances exactly one tick on the next update while paused.
func (ps *PhysicsSystem) StepOnce() {
	if ps == nil {
		return
	}
	ps.step = true
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.scene == nil || w == nil {
		return
	}
	if ps.paused && !ps.step {
		return
	}
	ps.step = false

	ps.scene.Sink = TransformSink{World: w}
	report := physics.Advance(ps.scene, ps.dt)
	w.Events().Push(ecs.Event{Type: ecs.StepEventType, Data: report})
}
