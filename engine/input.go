package engine

// InputEventType discriminates input events
type InputEventType int

const (
	KeyDown InputEventType = iota
	KeyUp
	MouseDown
	MouseUp
	MouseMove
	MouseScroll
	InputNone
)

// InputEvent is a single polled event
type InputEvent struct {
	Type InputEventType
	Key  int
	X, Y float64
}

// InputPoller is implemented by the windowing layer
type InputPoller interface {
	// Poll returns the next pending event, or an event of type InputNone
	Poll() InputEvent
}
