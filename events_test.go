package pebble

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMakePairKeyNormalizesOrder(t *testing.T) {
	if makePairKey(3, 1) != makePairKey(1, 3) {
		t.Error("pair keys differ depending on argument order")
	}
}

func TestCollisionEnterStayExit(t *testing.T) {
	scene := NewScene(mgl64.Vec3{}, 2.0)
	a := newTestBody(mgl64.Vec3{0.2, 0.5, 0.5}, 1.0)
	b := newTestBody(mgl64.Vec3{0.8, 0.5, 0.5}, 1.0)
	scene.AddBody(a)
	scene.AddBody(b)

	var enters, stays, exits int
	scene.Events.Subscribe(COLLISION_ENTER, func(Event) { enters++ })
	scene.Events.Subscribe(COLLISION_STAY, func(Event) { stays++ })
	scene.Events.Subscribe(COLLISION_EXIT, func(Event) { exits++ })

	frame := func() {
		if err := scene.RebuildGrid(); err != nil {
			t.Fatalf("RebuildGrid: %v", err)
		}
		scene.DetectCollisions()
		scene.Events.Flush()
	}

	// Frame 1: nouvelle paire
	frame()
	if enters != 1 || stays != 0 || exits != 0 {
		t.Fatalf("after frame 1: enter=%d stay=%d exit=%d, want 1/0/0", enters, stays, exits)
	}

	// Frame 2: la paire persiste (les vitesses induites ne les séparent pas encore)
	a.Velocity = mgl64.Vec3{}
	b.Velocity = mgl64.Vec3{}
	frame()
	if enters != 1 || stays != 1 || exits != 0 {
		t.Fatalf("after frame 2: enter=%d stay=%d exit=%d, want 1/1/0", enters, stays, exits)
	}

	// Frame 3: un corps part loin, la paire disparaît
	b.Transform.Position = mgl64.Vec3{50, 0.5, 0.5}
	frame()
	if enters != 1 || stays != 1 || exits != 1 {
		t.Fatalf("after frame 3: enter=%d stay=%d exit=%d, want 1/1/1", enters, stays, exits)
	}
}

// Retirer un corps fait glisser les indices suivants: une paire physiquement
// stable doit rester un Stay, sous ses nouveaux indices, pas un Exit suivi
// d'un Enter parasite.
func TestRemoveBodyRemapsCollisionPairs(t *testing.T) {
	scene := NewScene(mgl64.Vec3{}, 2.0)
	far := newTestBody(mgl64.Vec3{50, 0.5, 0.5}, 1.0)
	a := newTestBody(mgl64.Vec3{0.2, 0.5, 0.5}, 1.0)
	b := newTestBody(mgl64.Vec3{0.8, 0.5, 0.5}, 1.0)
	scene.AddBody(far)
	scene.AddBody(a)
	scene.AddBody(b)

	var events []Event
	record := func(e Event) { events = append(events, e) }
	scene.Events.Subscribe(COLLISION_ENTER, record)
	scene.Events.Subscribe(COLLISION_STAY, record)
	scene.Events.Subscribe(COLLISION_EXIT, record)

	frame := func() {
		a.Velocity = mgl64.Vec3{}
		b.Velocity = mgl64.Vec3{}
		if err := scene.RebuildGrid(); err != nil {
			t.Fatalf("RebuildGrid: %v", err)
		}
		scene.DetectCollisions()
		scene.Events.Flush()
	}

	// Frame 1: la paire (1,2) entre en contact
	frame()
	if len(events) != 1 {
		t.Fatalf("after frame 1: %d events, want 1", len(events))
	}
	if _, ok := events[0].(CollisionEnterEvent); !ok {
		t.Fatalf("after frame 1: got %T, want CollisionEnterEvent", events[0])
	}

	// Retrait du corps 0: la paire survivante devient (0,1)
	scene.RemoveBody(far)
	events = events[:0]

	frame()
	if len(events) != 1 {
		t.Fatalf("after removal frame: %d events, want 1 (got %#v)", len(events), events)
	}
	stay, ok := events[0].(CollisionStayEvent)
	if !ok {
		t.Fatalf("after removal frame: got %T, want CollisionStayEvent", events[0])
	}
	if stay.BodyA != 0 || stay.BodyB != 1 {
		t.Errorf("stay pair = (%d,%d), want (0,1)", stay.BodyA, stay.BodyB)
	}
}

// Un Restore annule aussi le suivi des paires: rejouer la frame abandonnée
// redonne un Stay, pas un Enter parasite.
func TestRestoreResetsCollisionPairs(t *testing.T) {
	scene := NewScene(mgl64.Vec3{}, 2.0)
	a := newTestBody(mgl64.Vec3{0.2, 0.5, 0.5}, 1.0)
	b := newTestBody(mgl64.Vec3{0.8, 0.5, 0.5}, 1.0)
	scene.AddBody(a)
	scene.AddBody(b)

	var enters, stays, exits int
	scene.Events.Subscribe(COLLISION_ENTER, func(Event) { enters++ })
	scene.Events.Subscribe(COLLISION_STAY, func(Event) { stays++ })
	scene.Events.Subscribe(COLLISION_EXIT, func(Event) { exits++ })

	frame := func() {
		a.Velocity = mgl64.Vec3{}
		b.Velocity = mgl64.Vec3{}
		if err := scene.RebuildGrid(); err != nil {
			t.Fatalf("RebuildGrid: %v", err)
		}
		scene.DetectCollisions()
		scene.Events.Flush()
	}

	frame()
	if enters != 1 {
		t.Fatalf("after frame 1: enter=%d, want 1", enters)
	}

	snap, err := scene.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	// Frame abandonnée: détection sans flush, puis rollback
	if err := scene.RebuildGrid(); err != nil {
		t.Fatalf("RebuildGrid: %v", err)
	}
	scene.DetectCollisions()
	if err := scene.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	// La frame rejouée voit la paire comme déjà active
	frame()
	if enters != 1 || stays != 1 || exits != 0 {
		t.Errorf("after replayed frame: enter=%d stay=%d exit=%d, want 1/1/0", enters, stays, exits)
	}
}

func TestCollisionEventCarriesIndices(t *testing.T) {
	scene := NewScene(mgl64.Vec3{}, 2.0)
	scene.AddBody(newTestBody(mgl64.Vec3{0.2, 0.5, 0.5}, 1.0))
	scene.AddBody(newTestBody(mgl64.Vec3{0.8, 0.5, 0.5}, 1.0))

	var got CollisionEnterEvent
	scene.Events.Subscribe(COLLISION_ENTER, func(e Event) {
		got = e.(CollisionEnterEvent)
	})

	if err := scene.RebuildGrid(); err != nil {
		t.Fatalf("RebuildGrid: %v", err)
	}
	scene.DetectCollisions()
	scene.Events.Flush()

	if got.BodyA != 0 || got.BodyB != 1 {
		t.Errorf("enter event pair = (%d,%d), want (0,1)", got.BodyA, got.BodyB)
	}
}
