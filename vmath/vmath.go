// Package vmath complète mgl64 avec les opérations dont la simulation a besoin
// et que mathgl ne fournit pas avec les bonnes garanties aux cas dégénérés.
package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Normalized returns v scaled to unit length.
// A zero-length vector is returned unchanged: callers treat it as a
// degenerate direction (zero impulse), never as an error.
func Normalized(v mgl64.Vec3) mgl64.Vec3 {
	length := v.Len()
	if length == 0 {
		return v
	}

	return v.Mul(1.0 / length)
}

// IntegrateOrientation advances an orientation by an angular velocity (rad/s)
// over dt, first order (Euler):
//
//	qdot = 0.5 * (omega * q)
//	q'   = normalize(q + qdot*dt)
//
// La renormalisation est obligatoire après chaque pas pour borner la dérive.
func IntegrateOrientation(q mgl64.Quat, omega mgl64.Vec3, dt float64) mgl64.Quat {
	omegaQuat := mgl64.Quat{W: 0, V: omega}
	qdot := omegaQuat.Mul(q).Scale(0.5)

	return q.Add(qdot.Scale(dt)).Normalize()
}
