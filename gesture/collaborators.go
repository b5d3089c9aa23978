package gesture

import "time"

// Axis is the scrolling direction a detector claims drags for.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Scroller is the deck being scrolled.
type Scroller interface {
	// ScrollBy moves the content by delta cells; the scroll position
	// changes by -delta.
	ScrollBy(delta float64)
	ScrollPosition() float64
	ColumnDistance() float64
	ColumnCount() int
}

// Rearranger reorders the deck after a long press.
type Rearranger interface {
	// StartRearrange picks up the item under y and reports whether there
	// was one.
	StartRearrange(y float64) bool
	RearrangeBy(delta float64)
	FinishRearrange()
}

// NestedScroll answers whether content under a point can still scroll by
// delta along axis. A detector never claims a drag such content can take.
type NestedScroll interface {
	CanScroll(x, y float64, axis Axis, delta float64) bool
}

// Container is whatever hosts the deck. While a drag is claimed it is asked
// to route every pointer event to the deck.
type Container interface {
	RequestExclusive(exclusive bool)
}

// Timer is a pending deferred call.
type Timer interface {
	// Stop prevents the call from running. It reports false when the call
	// already ran or was stopped.
	Stop() bool
}

// Scheduler runs f once after d on the goroutine that delivers events.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}
