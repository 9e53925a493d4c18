package physics

import (
	"errors"
	"fmt"

	"github.com/icmeyer/boing/geom"
	"github.com/jakecoffman/cp"
)

// CircleSegments is the number of polygon sides used to approximate a circle.
const CircleSegments = 16

var (
	ErrInvalidSize  = errors.New("physics: shape size must be positive")
	ErrNegativeMass = errors.New("physics: mass must not be negative")
)

// Kind tags the concrete shape stored in a Shape.
type Kind uint8

const (
	Circle Kind = iota + 1
	Rectangle
)

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// Handle identifies the renderable owned by the collaborator layer. The zero
// Handle means the shape has no visual.
type Handle uint64

// Body is the kinematic state shared by every shape kind.
type Body struct {
	Position   cp.Vector
	Velocity   cp.Vector
	Mass       float64
	Stationary bool
}

// Shape is a closed sum over Circle and Rectangle. Radius is only meaningful
// for circles, Width and Height only for rectangles.
type Shape struct {
	Kind Kind
	Name string
	Body Body

	Radius float64
	Width  float64
	Height float64

	handle   Handle
	vertices []cp.Vector
	normals  []cp.Vector
}

// BodyParams are the construction inputs common to every shape.
type BodyParams struct {
	Name       string
	Position   cp.Vector
	Velocity   cp.Vector
	Mass       float64
	Stationary bool
	Handle     Handle
}

type CircleParams struct {
	BodyParams
	Radius float64
}

type RectParams struct {
	BodyParams
	Width  float64
	Height float64
}

// NewCircle builds a circle approximated by a CircleSegments-sided polygon.
func NewCircle(p CircleParams) (*Shape, error) {
	if p.Radius <= 0 {
		return nil, fmt.Errorf("%w: radius %v", ErrInvalidSize, p.Radius)
	}
	s := &Shape{Kind: Circle, Radius: p.Radius}
	if err := s.init(p.BodyParams, geom.RegularPolygon(CircleSegments, p.Radius)); err != nil {
		return nil, err
	}
	return s, nil
}

// NewRectangle builds an axis-aligned width x height box.
func NewRectangle(p RectParams) (*Shape, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidSize, p.Width, p.Height)
	}
	s := &Shape{Kind: Rectangle, Width: p.Width, Height: p.Height}
	if err := s.init(p.BodyParams, geom.Rectangle(p.Width, p.Height)); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Shape) init(p BodyParams, vertices []cp.Vector) error {
	if p.Mass < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeMass, p.Mass)
	}
	normals, err := geom.ComputeNormals(vertices)
	if err != nil {
		return fmt.Errorf("physics: build %s: %w", s.Kind, err)
	}
	s.Name = p.Name
	s.Body = Body{
		Position:   p.Position,
		Velocity:   p.Velocity,
		Mass:       p.Mass,
		Stationary: p.Stationary,
	}
	s.handle = p.Handle
	s.vertices = vertices
	s.normals = normals
	return nil
}

func (s *Shape) Position() cp.Vector { return s.Body.Position }
func (s *Shape) Velocity() cp.Vector { return s.Body.Velocity }
func (s *Shape) Mass() float64       { return s.Body.Mass }
func (s *Shape) IsStationary() bool  { return s.Body.Stationary }

// SetVelocity overwrites the velocity without validation.
func (s *Shape) SetVelocity(v cp.Vector) { s.Body.Velocity = v }

func (s *Shape) Handle() Handle     { return s.handle }
func (s *Shape) SetHandle(h Handle) { s.handle = h }

// LocalVertices returns the ring relative to the centroid. Callers must not
// modify it.
func (s *Shape) LocalVertices() []cp.Vector { return s.vertices }

// FaceNormals returns the construction-time edge normals. Callers must not
// modify it.
func (s *Shape) FaceNormals() []cp.Vector { return s.normals }

// WorldVertices translates the local ring by the current position. The result
// is a fresh slice on every call.
func (s *Shape) WorldVertices() []cp.Vector {
	return geom.Translate(s.vertices, s.Body.Position)
}
