package prefabs

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/icmeyer/boing/physics"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// LoadTimeout bounds how long a scene load, spawn script included, may run.
const LoadTimeout = time.Second

// DefaultSide is the side length of the square the default scenes live in.
const DefaultSide = 600.0

// SceneSpec is the yaml description of a scene.
type SceneSpec struct {
	Name    string      `yaml:"name"`
	Side    float64     `yaml:"side"`
	Seed    int64       `yaml:"seed"`
	Script  string      `yaml:"script"`
	Physics PhysicsSpec `yaml:"physics"`
	Camera  CameraSpec  `yaml:"camera"`
	Bodies  []BodySpec  `yaml:"bodies"`
}

// PhysicsSpec overrides physics.DefaultConfig field by field; nil keeps the
// default.
type PhysicsSpec struct {
	GravityScale    *float64 `yaml:"gravity_scale"`
	Restitution     *float64 `yaml:"restitution"`
	DragCoefficient *float64 `yaml:"drag_coefficient"`
	DragReference   *float64 `yaml:"drag_reference"`
	ApproachOnly    *bool    `yaml:"approach_only"`
	Epsilon         *float64 `yaml:"epsilon"`
}

type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Target     string  `yaml:"target"`
	Smoothness float64 `yaml:"smoothness"`
}

type BodySpec struct {
	Name       string     `yaml:"name"`
	Kind       string     `yaml:"kind"`
	X          float64    `yaml:"x"`
	Y          float64    `yaml:"y"`
	VX         float64    `yaml:"vx"`
	VY         float64    `yaml:"vy"`
	Mass       *float64   `yaml:"mass"`
	Stationary bool       `yaml:"stationary"`
	Radius     float64    `yaml:"radius"`
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Color      *YAMLColor `yaml:"color"`
}

// Config merges the overrides over physics.DefaultConfig.
func (p PhysicsSpec) Config() physics.Config {
	cfg := physics.DefaultConfig()
	if p.GravityScale != nil {
		cfg.GravityScale = *p.GravityScale
	}
	if p.Restitution != nil {
		cfg.Restitution = *p.Restitution
	}
	if p.DragCoefficient != nil {
		cfg.DragCoefficient = *p.DragCoefficient
	}
	if p.DragReference != nil {
		cfg.DragReference = *p.DragReference
	}
	if p.ApproachOnly != nil {
		cfg.ApproachOnly = *p.ApproachOnly
	}
	if p.Epsilon != nil {
		cfg.Epsilon = *p.Epsilon
	}
	return cfg
}

// BodyMass returns the configured mass, 1 when unset.
func (b BodySpec) BodyMass() float64 {
	if b.Mass == nil {
		return 1
	}
	return *b.Mass
}

// Shape builds the physics shape the body describes. The handle is left
// unset.
func (b BodySpec) Shape() (*physics.Shape, error) {
	params := physics.BodyParams{
		Name:       b.Name,
		Position:   cp.Vector{X: b.X, Y: b.Y},
		Velocity:   cp.Vector{X: b.VX, Y: b.VY},
		Mass:       b.BodyMass(),
		Stationary: b.Stationary,
	}
	switch b.Kind {
	case physics.Circle.String():
		return physics.NewCircle(physics.CircleParams{BodyParams: params, Radius: b.Radius})
	case physics.Rectangle.String():
		return physics.NewRectangle(physics.RectParams{BodyParams: params, Width: b.Width, Height: b.Height})
	default:
		return nil, fmt.Errorf("unknown kind %q", b.Kind)
	}
}

// Scene builds the bodies into a new physics scene, in order.
func (s *SceneSpec) Scene() (*physics.Scene, error) {
	scene := physics.NewScene()
	scene.Config = s.Physics.Config()
	for i, b := range s.Bodies {
		shape, err := b.Shape()
		if err != nil {
			return nil, fmt.Errorf("prefabs: body %d (%s): %w", i, b.Name, err)
		}
		scene.Add(shape)
	}
	return scene, nil
}

// ParseScene decodes a scene and fills in defaults. Scripts are not run.
func ParseScene(data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	if spec.Side <= 0 {
		spec.Side = DefaultSide
	}
	if spec.Camera.Zoom <= 0 {
		spec.Camera.Zoom = 1
	}
	for i := range spec.Bodies {
		if err := spec.Bodies[i].normalize(); err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
	}
	return &spec, nil
}

// LoadScene reads a scene by name and runs its spawn script, if any.
func LoadScene(ctx context.Context, name string) (*SceneSpec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	spec, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(cleanPath(name), ".yaml")
	}
	if spec.Script != "" {
		bodies, err := RunScript(ctx, spec.Script, spec.Side, spec.Seed)
		if err != nil {
			return nil, fmt.Errorf("prefabs: script %s: %w", spec.Script, err)
		}
		spec.Bodies = append(spec.Bodies, bodies...)
	}
	return spec, nil
}

func (b *BodySpec) normalize() error {
	b.Kind = strings.ToLower(strings.TrimSpace(b.Kind))
	switch b.Kind {
	case "circle", "ball":
		b.Kind = physics.Circle.String()
	case "rectangle", "rect", "box":
		b.Kind = physics.Rectangle.String()
	case "":
		if b.Radius > 0 {
			b.Kind = physics.Circle.String()
		} else {
			b.Kind = physics.Rectangle.String()
		}
	default:
		return fmt.Errorf("unknown kind %q", b.Kind)
	}
	return nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.NRGBA = color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		rgba[i] = v
	}

	c.NRGBA = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}
