package prefabs

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/icmeyer/boing/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSceneDefaults(t *testing.T) {
	spec, err := ParseScene([]byte(`
bodies:
  - name: a
    radius: 2
  - name: b
    kind: Box
    width: 1
    height: 1
    mass: 0
`))
	require.NoError(t, err)
	assert.Equal(t, DefaultSide, spec.Side)
	assert.Equal(t, 1.0, spec.Camera.Zoom)
	require.Len(t, spec.Bodies, 2)
	assert.Equal(t, "circle", spec.Bodies[0].Kind)
	assert.Equal(t, 1.0, spec.Bodies[0].BodyMass())
	assert.Equal(t, "rectangle", spec.Bodies[1].Kind)
	assert.Equal(t, 0.0, spec.Bodies[1].BodyMass())
}

func TestParseSceneErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown_kind", "bodies:\n  - kind: triangle\n", "unknown kind"},
		{"bad_hex", "bodies:\n  - radius: 1\n    color: \"#12\"\n", "invalid color"},
		{"color_map", "bodies:\n  - radius: 1\n    color: {r: 1}\n", "color must be a string"},
		{"not_yaml", "bodies: [", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseScene([]byte(c.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestYAMLColor(t *testing.T) {
	spec, err := ParseScene([]byte(`
bodies:
  - radius: 1
    color: "#1e3d6f"
  - radius: 1
    color: "10203040"
  - radius: 1
    color: Gold
`))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x1e, G: 0x3d, B: 0x6f, A: 0xff}, spec.Bodies[0].Color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, spec.Bodies[1].Color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, G: 215, B: 0, A: 255}, spec.Bodies[2].Color.NRGBA)

	out, err := spec.Bodies[0].Color.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "#1e3d6fff", out)
}

func TestPhysicsSpecConfig(t *testing.T) {
	assert.Equal(t, physics.DefaultConfig(), PhysicsSpec{}.Config())

	spec, err := ParseScene([]byte(`
physics:
  restitution: 1
  drag_coefficient: 0
  approach_only: true
  epsilon: 0.5
`))
	require.NoError(t, err)
	cfg := spec.Physics.Config()
	assert.Equal(t, 1.0, cfg.Restitution)
	assert.Equal(t, 0.0, cfg.DragCoefficient)
	assert.True(t, cfg.ApproachOnly)
	assert.Equal(t, 0.5, cfg.Epsilon)
	assert.Equal(t, physics.DefaultConfig().GravityScale, cfg.GravityScale)
}

func TestLoadEmbeddedScenes(t *testing.T) {
	ctx := context.Background()

	box, err := LoadScene(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "box", box.Name)
	require.Len(t, box.Bodies, 5)
	assert.Equal(t, "ball", box.Bodies[0].Name)
	assert.Equal(t, 330.0, box.Bodies[0].VX)
	for _, b := range box.Bodies[1:] {
		assert.True(t, b.Stationary, b.Name)
	}

	orbits, err := LoadScene(ctx, "prefabs/orbits.yaml")
	require.NoError(t, err)
	require.Len(t, orbits.Bodies, 9, "sun plus the ring script's moons")
	assert.Equal(t, "sun", orbits.Bodies[0].Name)
	for _, b := range orbits.Bodies[1:] {
		assert.True(t, strings.HasPrefix(b.Name, "moon-"), b.Name)
		assert.Equal(t, "circle", b.Kind)
		assert.Greater(t, b.Radius, 0.0)
		require.NotNil(t, b.Color)
	}

	_, err = LoadScene(ctx, "missing")
	assert.Error(t, err)
}

func TestRunScriptDeterministic(t *testing.T) {
	ctx := context.Background()
	a, err := RunScript(ctx, "rain.tengo", 600, 3)
	require.NoError(t, err)
	b, err := RunScript(ctx, "scripts/rain.tengo", 600, 3)
	require.NoError(t, err)
	require.Len(t, a, 12)
	assert.Equal(t, a, b, "same seed gives the same bodies")
	assert.Equal(t, "rectangle", a[0].Kind)
	assert.Equal(t, "circle", a[1].Kind)
}

func TestDecodeBodyRejectsNonMaps(t *testing.T) {
	_, err := decodeBody([]any{1, 2})
	assert.Error(t, err)

	body, err := decodeBody(map[string]any{"kind": "ball", "x": int64(3), "radius": 1.5})
	require.NoError(t, err)
	assert.Equal(t, "circle", body.Kind)
	assert.Equal(t, 3.0, body.X)
}

func TestSceneSpecBuildsShapes(t *testing.T) {
	spec, err := ParseScene([]byte(`
physics:
  restitution: 1
bodies:
  - name: ball
    radius: 2
    x: 3
    vy: -1
  - name: wall
    kind: rect
    width: 4
    height: 1
    stationary: true
`))
	require.NoError(t, err)

	scene, err := spec.Scene()
	require.NoError(t, err)
	assert.Equal(t, 1.0, scene.Config.Restitution)
	require.Len(t, scene.Shapes, 2)

	ball, wall := scene.Shapes[0], scene.Shapes[1]
	assert.Equal(t, physics.Circle, ball.Kind)
	assert.Equal(t, 3.0, ball.Position().X)
	assert.Equal(t, -1.0, ball.Velocity().Y)
	assert.Equal(t, physics.Rectangle, wall.Kind)
	assert.True(t, wall.IsStationary())
	assert.Zero(t, ball.Handle())

	bad := &SceneSpec{Bodies: []BodySpec{{Name: "flat", Kind: "rectangle", Width: 1}}}
	_, err = bad.Scene()
	assert.ErrorIs(t, err, physics.ErrInvalidSize)
}

func TestLoadSceneStopsRunawayScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, Dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, Dir, "spin.yaml"), []byte("script: spin.tengo\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, Dir, "scripts", "spin.tengo"), []byte("for {}\n"), 0o644))
	t.Chdir(dir)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := LoadScene(ctx, "spin")
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("LoadScene did not honour the deadline")
	}
}
