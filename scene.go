// Package pebble is a minimal real-time rigid-body simulator: semi-implicit
// Euler integration, a uniform spatial hash grid for the broad phase, and
// single-pass impulse resolution for contacts and distance joints.
package pebble

import (
	"github.com/akmonengine/pebble/actor"
	"github.com/akmonengine/pebble/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

// contactRestDistance is the implicit rest separation used when resolving a
// contact pair. The resolver is shape-agnostic for now: unit separation stands
// in for the radius sum of the two shapes until a geometry-aware narrow phase
// reads actor.Shape.
const contactRestDistance = 1.0

// Scene is the unit of per-frame simulation. Bodies are owned by the
// application; the scene reads and mutates them in place and never frees
// them. A Scene is confined to one goroutine, there is no internal locking.
type Scene struct {
	// List of all rigid bodies in the scene
	Bodies []*actor.RigidBody
	// Gravity acceleration (m/s², or N/kg)
	Gravity mgl64.Vec3
	Grid    *SpatialGrid

	Events Events
}

// NewScene creates an empty scene using a grid with the given cell size.
func NewScene(gravity mgl64.Vec3, cellSize float64) *Scene {
	return &Scene{
		Gravity: gravity,
		Grid:    NewSpatialGrid(cellSize, 64, 0),
		Events:  NewEvents(),
	}
}

// AddBody adds a rigid body to the scene and returns its index
func (s *Scene) AddBody(body *actor.RigidBody) int {
	s.Bodies = append(s.Bodies, body)

	return len(s.Bodies) - 1
}

// RemoveBody removes a rigid body from the scene.
// Les indices suivants glissent: les joints et la grille doivent être
// reconstruits par l'appelant après un retrait. Le suivi des paires de
// collision est remappé sur les nouveaux indices.
func (s *Scene) RemoveBody(body *actor.RigidBody) {
	k := -1
	for i, b := range s.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		s.Bodies = append(s.Bodies[:k], s.Bodies[k+1:]...)
		s.Events.removeBody(k)
	}
}

// Step advances every body by dt: gravity into velocity, velocity into
// position, angular velocity into orientation. Collision detection is a
// separate explicit call; the caller rebuilds the grid in between so the
// contact pass sees current positions:
//
//	scene.Step(dt)
//	scene.RebuildGrid()
//	scene.DetectCollisions()
//	// puis les joints, une fois chacun, par l'application
func (s *Scene) Step(dt float64) {
	for _, body := range s.Bodies {
		body.Integrate(dt, s.Gravity)
	}
}

// RebuildGrid repopulates the spatial grid from current body positions,
// full clear-and-reinsert. On error the grid is incomplete and the step must
// be abandoned (see Snapshot for the rollback hook).
func (s *Scene) RebuildGrid() error {
	s.Grid.Clear()

	for i, body := range s.Bodies {
		if err := s.Grid.Insert(i, body.Transform.Position); err != nil {
			return err
		}
	}

	return nil
}

// DetectCollisions resolves every pair sharing a grid cell, one impulse per
// pair per call, deterministic i<j order within each cell. Pairs of two
// static bodies are skipped. Resolved pairs are recorded for Events.
func (s *Scene) DetectCollisions() {
	s.Grid.ForEachCell(func(_ CellKey, bodyIndices []int) {
		for i := 0; i < len(bodyIndices); i++ {
			for j := i + 1; j < len(bodyIndices); j++ {
				bodyA := s.Bodies[bodyIndices[i]]
				bodyB := s.Bodies[bodyIndices[j]]

				if bodyA.Static() && bodyB.Static() {
					continue
				}

				constraint.ResolvePair(bodyA, bodyB, mgl64.Vec3{}, mgl64.Vec3{}, contactRestDistance)
				s.Events.recordCollision(bodyIndices[i], bodyIndices[j])
			}
		}
	})
}
