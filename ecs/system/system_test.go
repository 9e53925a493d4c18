package system

import (
	"testing"

	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
	"github.com/icmeyer/boing/physics"
	"github.com/jakecoffman/cp"
)

func newMovingBall(t *testing.T, w *ecs.World, name string, x, vx float64) (ecs.Entity, *physics.Shape) {
	t.Helper()
	s, err := physics.NewCircle(physics.CircleParams{
		BodyParams: physics.BodyParams{Name: name, Position: cp.Vector{X: x}, Velocity: cp.Vector{X: vx}, Mass: 1},
		Radius:     1,
	})
	if err != nil {
		t.Fatalf("new circle: %v", err)
	}
	e := w.CreateEntity()
	s.SetHandle(HandleOf(e))
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent, component.Body{Shape: s}); err != nil {
		t.Fatalf("add body: %v", err)
	}
	return e, s
}

func quietScene(shapes ...*physics.Shape) *physics.Scene {
	scene := physics.NewScene()
	scene.Config.GravityScale = 0
	scene.Config.DragCoefficient = 0
	scene.Add(shapes...)
	return scene
}

func TestTransformSink(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := newMovingBall(t, w, "ball", 5, 0)
	sink := TransformSink{World: w}

	if !sink.Translate(HandleOf(e), cp.Vector{X: 1, Y: -2}) {
		t.Fatal("expected translate to find the transform")
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.X != 6 || tr.Y != -2 {
		t.Fatalf("unexpected transform %+v", tr)
	}

	if sink.Translate(0, cp.Vector{X: 1}) {
		t.Fatal("expected the zero handle to be unbound")
	}
	w.DestroyEntity(e)
	if sink.Translate(HandleOf(e), cp.Vector{X: 1}) {
		t.Fatal("expected a destroyed entity to be unbound")
	}
	if (TransformSink{}).Translate(HandleOf(e), cp.Vector{X: 1}) {
		t.Fatal("expected a nil world to be unbound")
	}
}

func TestPhysicsSystemMovesTransforms(t *testing.T) {
	w := ecs.NewWorld()
	bound, boundShape := newMovingBall(t, w, "bound", 0, TickRate)
	_, loose := newMovingBall(t, w, "loose", 100, TickRate)
	loose.SetHandle(0)

	ps := NewPhysicsSystem(quietScene(boundShape, loose), 0)
	w.AddSystem(ps)
	w.AddSystem(NewStatsSystem())
	stats := w.CreateEntity()
	if err := ecs.Add(w, stats, component.SimStatsComponent, component.SimStats{}); err != nil {
		t.Fatalf("add stats: %v", err)
	}

	w.Update()

	tr, _ := ecs.Get(w, bound, component.TransformComponent)
	if tr.X != 1 || boundShape.Position().X != 1 {
		t.Fatalf("expected bound ball at x=1, transform %v body %v", tr.X, boundShape.Position().X)
	}
	if loose.Position().X != 100 {
		t.Fatalf("expected unbound ball to stay put, got %v", loose.Position().X)
	}

	got, _ := ecs.Get(w, stats, component.SimStatsComponent)
	want := physics.StepReport{Moved: 1, Unbound: 1}
	if got.Tick != 1 || got.Last != want {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestPhysicsSystemPause(t *testing.T) {
	w := ecs.NewWorld()
	_, s := newMovingBall(t, w, "ball", 0, TickRate)
	ps := NewPhysicsSystem(quietScene(s), 1.0/TickRate)
	w.AddSystem(ps)

	ps.SetPaused(true)
	w.Update()
	if s.Position().X != 0 {
		t.Fatalf("expected no motion while paused, got %v", s.Position().X)
	}

	ps.StepOnce()
	w.Update()
	w.Update()
	if s.Position().X != 1 {
		t.Fatalf("expected a single step, got %v", s.Position().X)
	}

	ps.SetPaused(false)
	w.Update()
	if s.Position().X != 2 || ps.Paused() {
		t.Fatalf("expected motion after resume, got %v", s.Position().X)
	}
}

func TestStatsSystemAccumulates(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.SimStatsComponent, component.SimStats{}); err != nil {
		t.Fatalf("add stats: %v", err)
	}
	w.AddSystem(NewStatsSystem())

	w.Events().Push(ecs.Event{Type: ecs.StepEventType, Data: physics.StepReport{Collisions: 2}})
	w.Events().Push(ecs.Event{Type: "other", Data: 7})
	w.Events().Push(ecs.Event{Type: ecs.StepEventType, Data: physics.StepReport{Collisions: 1, Moved: 3}})
	w.Update()

	got, _ := ecs.Get(w, e, component.SimStatsComponent)
	if got.Tick != 2 || got.TotalCollisions != 3 || got.Last.Moved != 3 {
		t.Fatalf("unexpected stats %+v", got)
	}

	w.Update()
	again, _ := ecs.Get(w, e, component.SimStatsComponent)
	if again != got {
		t.Fatalf("expected no change without events, got %+v", again)
	}
}

func TestCameraFollowsTarget(t *testing.T) {
	cases := []struct {
		name       string
		smoothness float64
		wantX      float64
	}{
		{"snap", 0, 10},
		{"ease", 0.5, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			newMovingBall(t, w, "ball", 10, 0)
			cam := w.CreateEntity()
			if err := ecs.Add(w, cam, component.TransformComponent, component.Transform{}); err != nil {
				t.Fatalf("add transform: %v", err)
			}
			if err := ecs.Add(w, cam, component.CameraComponent, component.Camera{TargetName: "ball", Zoom: 1, Smoothness: c.smoothness}); err != nil {
				t.Fatalf("add camera: %v", err)
			}

			NewCameraSystem().Update(w)

			tr, _ := ecs.Get(w, cam, component.TransformComponent)
			if tr.X != c.wantX {
				t.Fatalf("expected camera x %v, got %v", c.wantX, tr.X)
			}
		})
	}
}

func TestViewToScreen(t *testing.T) {
	w := ecs.NewWorld()
	if v := ViewOf(w, 200, 100); v.Zoom != 1 || v.X != 0 {
		t.Fatalf("unexpected default view %+v", v)
	}

	cam := w.CreateEntity()
	_ = ecs.Add(w, cam, component.TransformComponent, component.Transform{X: 10, Y: 10})
	_ = ecs.Add(w, cam, component.CameraComponent, component.Camera{Zoom: 2})
	v := ViewOf(w, 200, 100)

	cases := []struct {
		p      cp.Vector
		sx, sy float32
	}{
		{cp.Vector{X: 10, Y: 10}, 100, 50},
		{cp.Vector{X: 20, Y: 10}, 120, 50},
		{cp.Vector{X: 10, Y: 20}, 100, 30},
	}
	for _, c := range cases {
		x, y := v.ToScreen(c.p)
		if x != c.sx || y != c.sy {
			t.Fatalf("%v: expected (%v,%v), got (%v,%v)", c.p, c.sx, c.sy, x, y)
		}
	}
	if got := v.Scale(3); got != 6 {
		t.Fatalf("expected scaled length 6, got %v", got)
	}
}

func TestAudioSystemTriggersOnCollisionTicks(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.SimStatsComponent, component.SimStats{Tick: 1, Last: physics.StepReport{Collisions: 1}})
	_ = ecs.Add(w, e, component.AudioComponent, component.Audio{})

	NewAudioSystem().Update(w)
	a, _ := ecs.Get(w, e, component.AudioComponent)
	if a.Play || a.LastTick != 1 {
		t.Fatalf("expected the trigger to be consumed, got %+v", a)
	}
}
