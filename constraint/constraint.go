package constraint

import (
	"github.com/akmonengine/pebble/actor"
	"github.com/akmonengine/pebble/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

// Constraint is solved against the body slice that owns the referenced bodies.
// Solving is a single velocity-level impulse per call, not iterated to
// convergence: the driving loop decides how often each constraint runs.
type Constraint interface {
	Solve(bodies []*actor.RigidBody)
}

// ResolvePair applies one corrective impulse holding two anchored bodies at
// restDistance. Used both by the distance joint and by the contact resolver
// (which passes zero anchors and a unit rest distance).
//
//	n       = normalized(pB - pA), le vecteur nul si les ancres coïncident
//	c       = |pB - pA| - restDistance
//	impulse = n * (-c / (1/mA + 1/mB))
//
// Static bodies (infinite mass) contribute a zero inverse mass: they absorb
// none of the impulse. When both bodies are static the pair is left untouched.
func ResolvePair(bodyA, bodyB *actor.RigidBody, anchorA, anchorB mgl64.Vec3, restDistance float64) {
	invMassA := bodyA.InverseMass()
	invMassB := bodyB.InverseMass()
	invMass := invMassA + invMassB
	if invMass == 0 {
		return
	}

	// Anchors are world-space offsets added to the positions, not rotated into
	// each body's frame: a known simplification carried until the solver
	// becomes orientation-aware.
	pA := bodyA.Transform.Position.Add(anchorA)
	pB := bodyB.Transform.Position.Add(anchorB)

	diff := pB.Sub(pA)
	// Séparation nulle => normale nulle => impulsion nulle
	n := vmath.Normalized(diff)
	c := diff.Len() - restDistance

	impulse := n.Mul(-c / invMass)
	bodyA.Velocity = bodyA.Velocity.Sub(impulse.Mul(invMassA))
	bodyB.Velocity = bodyB.Velocity.Add(impulse.Mul(invMassB))
}
