package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func quatNorm(q mgl64.Quat) float64 {
	return math.Sqrt(q.W*q.W + q.V.Dot(q.V))
}

func quatApproxEqual(a, b mgl64.Quat, tolerance float64) bool {
	return math.Abs(a.W-b.W) <= tolerance && a.V.ApproxEqualThreshold(b.V, tolerance)
}

func TestVectorAlgebra(t *testing.T) {
	tests := []struct {
		name string
		a    mgl64.Vec3
		b    mgl64.Vec3
	}{
		{"unitaires", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{"quelconques", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 5, 6}},
		{"negatifs", mgl64.Vec3{-1.5, 2.25, -3.75}, mgl64.Vec3{0.5, -0.25, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// add(a,b) - b == a
			if got := tt.a.Add(tt.b).Sub(tt.b); !got.ApproxEqual(tt.a) {
				t.Errorf("Add/Sub roundtrip = %v, want %v", got, tt.a)
			}
			// dot commutatif
			if tt.a.Dot(tt.b) != tt.b.Dot(tt.a) {
				t.Errorf("Dot(a,b) = %v, Dot(b,a) = %v", tt.a.Dot(tt.b), tt.b.Dot(tt.a))
			}
			// cross anticommutatif
			if got, want := tt.a.Cross(tt.b), tt.b.Cross(tt.a).Mul(-1); !got.ApproxEqual(want) {
				t.Errorf("Cross(a,b) = %v, want -Cross(b,a) = %v", got, want)
			}
		})
	}
}

func TestNormalized(t *testing.T) {
	tests := []struct {
		name string
		v    mgl64.Vec3
	}{
		{"simple", mgl64.Vec3{1, 2, 3}},
		{"negatif", mgl64.Vec3{-4, 0.5, -0.001}},
		{"grand", mgl64.Vec3{1e6, -2e6, 3e6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalized(tt.v)
			if math.Abs(got.Len()-1.0) > 1e-3 {
				t.Errorf("Normalized(%v).Len() = %v, want 1", tt.v, got.Len())
			}
		})
	}
}

// Le vecteur nul est retourné tel quel, jamais une division par zéro.
func TestNormalizedZero(t *testing.T) {
	zero := mgl64.Vec3{}

	got := Normalized(zero)
	if got != zero {
		t.Errorf("Normalized(zero) = %v, want zero vector", got)
	}
}

func TestIntegrateOrientation(t *testing.T) {
	q := mgl64.QuatIdent()
	omega := mgl64.Vec3{0, 1, 0}
	dt := 0.016

	qNew := IntegrateOrientation(q, omega, dt)

	if qNew == q {
		t.Error("IntegrateOrientation with nonzero angular velocity did not change the orientation")
	}
	if math.Abs(quatNorm(qNew)-1.0) > 1e-3 {
		t.Errorf("IntegrateOrientation norm = %v, want 1", quatNorm(qNew))
	}
}

func TestIntegrateOrientationZeroVelocity(t *testing.T) {
	q := mgl64.QuatRotate(0.7, mgl64.Vec3{0, 0, 1})

	qNew := IntegrateOrientation(q, mgl64.Vec3{}, 1.0)

	if !quatApproxEqual(qNew, q.Normalize(), 1e-9) {
		t.Errorf("IntegrateOrientation with zero angular velocity = %v, want %v", qNew, q)
	}
}

// L'ordre du produit est significatif: omega*q, pas q*omega.
func TestIntegrateOrientationHamiltonOrder(t *testing.T) {
	q := mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{1, 0, 0})
	omega := mgl64.Vec3{0, 2, 0}
	dt := 0.1

	got := IntegrateOrientation(q, omega, dt)

	omegaQuat := mgl64.Quat{W: 0, V: omega}
	want := q.Add(omegaQuat.Mul(q).Scale(0.5 * dt)).Normalize()

	if !quatApproxEqual(got, want, 1e-9) {
		t.Errorf("IntegrateOrientation = %v, want %v", got, want)
	}
}
