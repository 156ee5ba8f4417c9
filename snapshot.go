package pebble

import (
	"github.com/akmonengine/pebble/actor"
	"github.com/jinzhu/copier"
)

// SceneSnapshot is a deep copy of the mutable state of a scene at one
// instant: every body, plus the collision pair tracking that feeds the
// Enter/Stay/Exit events. A failed step leaves the scene partially mutated
// (steps are not idempotent); restoring a snapshot taken before the step is
// the only supported recovery.
type SceneSnapshot struct {
	bodies []actor.RigidBody
	pairs  map[pairKey]bool
}

// Snapshot captures the current state of every body and the event pair
// tracking.
func (s *Scene) Snapshot() (*SceneSnapshot, error) {
	snap := &SceneSnapshot{
		bodies: make([]actor.RigidBody, len(s.Bodies)),
		pairs:  s.Events.snapshotPairs(),
	}

	for i, body := range s.Bodies {
		if err := copier.CopyWithOption(&snap.bodies[i], body, copier.Option{DeepCopy: true}); err != nil {
			return nil, err
		}
	}

	return snap, nil
}

// Restore writes the snapshot state back into the scene's bodies, in place:
// pointers held by joints or by the application stay valid. The body count
// must not have changed since the snapshot was taken. The event pair tracking
// is restored too, so rejouer la frame annulée produit les mêmes
// Enter/Stay/Exit que si elle n'avait jamais eu lieu.
func (s *Scene) Restore(snap *SceneSnapshot) error {
	for i := range snap.bodies {
		if err := copier.CopyWithOption(s.Bodies[i], &snap.bodies[i], copier.Option{DeepCopy: true}); err != nil {
			return err
		}
	}

	s.Events.restorePairs(snap.pairs)

	return nil
}
