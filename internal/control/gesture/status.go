package gesture

// Status is the state of the gesture state machine.
type Status int

const (
	// StatusNone means no pointer is down and nothing is moving.
	StatusNone Status = iota
	// StatusDown means a pointer is down (or a gesture settled without the
	// pointer being released).
	StatusDown
	// StatusScrolling means a drag is moving the cursor time.
	StatusScrolling
	// StatusFlinging means a fling simulation is moving the cursor time.
	StatusFlinging
	// StatusZooming means a scale gesture is changing the zoom.
	StatusZooming
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusDown:
		return "down"
	case StatusScrolling:
		return "scrolling"
	case StatusFlinging:
		return "flinging"
	case StatusZooming:
		return "zooming"
	default:
		return "unknown"
	}
}
