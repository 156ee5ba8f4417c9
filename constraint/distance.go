package constraint

import (
	"github.com/akmonengine/pebble/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Distance holds two bodies at a fixed rest distance between their anchor
// points. Bodies are referenced by index into the owning slice, the joint
// never owns them; creating and destroying joints is entirely up to the
// application.
type Distance struct {
	// Indices into the body slice passed to Solve
	BodyA int
	BodyB int

	// Anchor offsets, applied as world-space deltas to each body's position
	AnchorA mgl64.Vec3
	AnchorB mgl64.Vec3

	// Rest distance the joint tries to maintain
	Distance float64
}

// Solve applies one velocity impulse pulling the bodies toward the rest
// distance. Called once per frame by the owning application, it is not
// scheduled by the scene step. BodyA and BodyB must be valid indices into
// bodies: removing a body shifts the indices after it, stale joints must be
// rebuilt by the caller before the next Solve.
func (d *Distance) Solve(bodies []*actor.RigidBody) {
	ResolvePair(bodies[d.BodyA], bodies[d.BodyB], d.AnchorA, d.AnchorB, d.Distance)
}
