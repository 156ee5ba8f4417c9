package actor

import (
	"github.com/akmonengine/pebble/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

// RigidBody represents a rigid body in the physics simulation.
//
// A mass of zero (or below) means "static": infinite mass, immovable. Static
// bodies are skipped by integration and contribute a zero inverse mass to
// impulse computations, they are never divided by.
type RigidBody struct {
	// Spatial properties
	Transform Transform

	// Linear motion
	Velocity mgl64.Vec3 // Linear velocity (m/s)

	// Angular motion
	AngularVelocity mgl64.Vec3 // Vitesse de rotation (rad/s)

	// Physical properties
	Mass        float64
	Restitution float64 // 0= no rebound, 1= perfect restitution. Pas encore lu par le solveur.
	Inertia     float64 // Scalar inertia, unused until the solver goes angular

	// Collision shape, opaque to the resolver (see Shape)
	Shape Shape
}

// NewRigidBody creates a new rigid body with the given properties.
// mass <= 0 creates a static (immovable) body.
func NewRigidBody(transform Transform, shape Shape, mass float64) *RigidBody {
	return &RigidBody{
		Transform: transform,
		Shape:     shape,
		Mass:      mass,
		Velocity:  mgl64.Vec3{0, 0, 0},
	}
}

// Static reports whether the body has infinite mass
func (rb *RigidBody) Static() bool {
	return rb.Mass <= 0
}

// InverseMass returns 1/mass, or 0 for a static body.
// Zero signifies infinite mass; callers must never divide by the result
// without checking it first.
func (rb *RigidBody) InverseMass() float64 {
	if rb.Static() {
		return 0
	}

	return 1.0 / rb.Mass
}

// Integrate advances the body by dt seconds, semi-implicit Euler:
// velocity picks up this step's gravity first, then position moves by the
// updated velocity. Orientation is integrated from the angular velocity.
func (rb *RigidBody) Integrate(dt float64, gravity mgl64.Vec3) {
	if rb.Static() {
		return
	}

	// ========== INTÉGRATION LINÉAIRE ==========
	rb.Velocity = rb.Velocity.Add(gravity.Mul(dt))
	rb.Transform.Position = rb.Transform.Position.Add(rb.Velocity.Mul(dt))

	// ========== INTÉGRATION ANGULAIRE ==========
	rb.Transform.Rotation = vmath.IntegrateOrientation(rb.Transform.Rotation, rb.AngularVelocity, dt)
}
