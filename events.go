package pebble

type EventType uint8

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
)

// pairKey identifies a body pair by indices, normalized A < B
type pairKey struct {
	bodyA int
	bodyB int
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(bodyA, bodyB int) pairKey {
	if bodyB < bodyA {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Collision events, carrying the indices of the pair in Scene.Bodies
type CollisionEnterEvent struct {
	BodyA int
	BodyB int
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	BodyA int
	BodyB int
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	BodyA int
	BodyB int
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events tracks which pairs the contact resolver touched this frame and turns
// the frame-to-frame delta into Enter/Stay/Exit events.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Collision tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordCollision is called by the contact resolver for each resolved pair
func (e *Events) recordCollision(bodyA, bodyB int) {
	e.currentActivePairs[makePairKey(bodyA, bodyB)] = true
}

// removeBody purges the pair state of a removed body and remaps the
// surviving pairs: les indices au-delà de l'indice retiré glissent de un,
// les clés doivent suivre. Sans ce remappage, une paire physiquement stable
// émettrait des Enter/Exit parasites sous de mauvais indices.
func (e *Events) removeBody(index int) {
	e.previousActivePairs = remapPairs(e.previousActivePairs, index)
	e.currentActivePairs = remapPairs(e.currentActivePairs, index)
}

func remapPairs(pairs map[pairKey]bool, removed int) map[pairKey]bool {
	remapped := make(map[pairKey]bool, len(pairs))
	for pair := range pairs {
		if pair.bodyA == removed || pair.bodyB == removed {
			continue
		}
		a, b := pair.bodyA, pair.bodyB
		if a > removed {
			a--
		}
		if b > removed {
			b--
		}
		remapped[makePairKey(a, b)] = true
	}

	return remapped
}

// snapshotPairs copies the frame-to-frame pair state for Scene.Snapshot.
func (e *Events) snapshotPairs() map[pairKey]bool {
	pairs := make(map[pairKey]bool, len(e.previousActivePairs))
	for pair := range e.previousActivePairs {
		pairs[pair] = true
	}

	return pairs
}

// restorePairs puts back a snapshotted pair state and discards whatever the
// abandoned frame had recorded or buffered.
func (e *Events) restorePairs(pairs map[pairKey]bool) {
	clear(e.previousActivePairs)
	for pair := range pairs {
		e.previousActivePairs[pair] = true
	}
	clear(e.currentActivePairs)
	e.buffer = e.buffer[:0]
}

// processCollisionEvents compares current and previous pairs to detect
// Enter/Stay/Exit. Called once per frame from Flush.
func (e *Events) processCollisionEvents() {
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			// Pair was active before and still is, Stay
			e.buffer = append(e.buffer, CollisionStayEvent{
				BodyA: pair.bodyA,
				BodyB: pair.bodyB,
			})
		} else {
			// New pair, Enter
			e.buffer = append(e.buffer, CollisionEnterEvent{
				BodyA: pair.bodyA,
				BodyB: pair.bodyB,
			})
		}
	}

	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			// Pair was active but is no longer, Exit
			e.buffer = append(e.buffer, CollisionExitEvent{
				BodyA: pair.bodyA,
				BodyB: pair.bodyB,
			})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// Flush sends all buffered events and clears the buffer.
// À appeler une fois par frame, après la résolution des contacts.
func (e *Events) Flush() {
	e.processCollisionEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
