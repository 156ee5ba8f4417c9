package actor

import "math"

// ShapeType represents the type of collision shape
type ShapeType int

const (
	ShapeTypePlane ShapeType = iota
	ShapeTypeSphere
	ShapeTypeBox
)

// Shape is the tagged union of collision shapes attached to a RigidBody.
// The resolver does not read it yet (contacts are shape-agnostic, resolved at
// unit separation): a geometry-aware narrow phase dispatching on Type() is the
// documented extension point. Today the variants are consumed for mass
// computation and by whatever renderer reads them as opaque data.
type Shape interface {
	Type() ShapeType
	// Volume in m³, used to derive mass from a density
	Volume() float64
}

// Plane represents a finite flat collision shape
type Plane struct {
	Width  float64
	Height float64
}

func (p *Plane) Type() ShapeType { return ShapeTypePlane }

// Volume of a plane is zero: a plane has no mass of its own.
// Les plans sont statiques, la densité ne s'applique pas.
func (p *Plane) Volume() float64 { return 0 }

// Sphere represents a spherical collision shape
type Sphere struct {
	Radius float64
}

func (s *Sphere) Type() ShapeType { return ShapeTypeSphere }

func (s *Sphere) Volume() float64 {
	return (4.0 / 3.0) * math.Pi * math.Pow(s.Radius, 3)
}

// Box represents a box collision shape with full dimensions
type Box struct {
	Width  float64
	Height float64
	Depth  float64
}

func (b *Box) Type() ShapeType { return ShapeTypeBox }

func (b *Box) Volume() float64 {
	return b.Width * b.Height * b.Depth
}
