// Package gesture turns a stream of pointer events into scrolling, flings
// and long-press reordering of a column deck.
package gesture

// Action is the kind of a MotionEvent.
type Action int

const (
	// ActionDown is the first pointer touching down.
	ActionDown Action = iota
	// ActionMove reports new positions for the pointers that are down.
	ActionMove
	// ActionUp is the last pointer lifting.
	ActionUp
	// ActionCancel aborts the gesture.
	ActionCancel
	// ActionPointerDown is an additional pointer touching down.
	ActionPointerDown
	// ActionPointerUp is a pointer lifting while others stay down.
	ActionPointerUp
)

var actionNames = [...]string{
	ActionDown:        "down",
	ActionMove:        "move",
	ActionUp:          "up",
	ActionCancel:      "cancel",
	ActionPointerDown: "pointer-down",
	ActionPointerUp:   "pointer-up",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Pointer is one touching pointer.
type Pointer struct {
	ID   int
	X, Y float64
}

// MotionEvent is one sample of the pointer stream. Pointers lists every
// pointer that is down; ActionIndex selects the pointer an ActionDown,
// ActionPointerDown or ActionPointerUp refers to.
type MotionEvent struct {
	Action      Action
	Pointers    []Pointer
	ActionIndex int
}

// FindPointerIndex returns the index of the pointer with the given id, or -1.
func (e MotionEvent) FindPointerIndex(id int) int {
	for i, p := range e.Pointers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ActionPointer returns the pointer selected by ActionIndex.
func (e MotionEvent) ActionPointer() (Pointer, bool) {
	if e.ActionIndex < 0 || e.ActionIndex >= len(e.Pointers) {
		return Pointer{}, false
	}
	return e.Pointers[e.ActionIndex], true
}

// Single builds an event for a single pointer with id 0.
func Single(action Action, x, y float64) MotionEvent {
	return MotionEvent{Action: action, Pointers: []Pointer{{X: x, Y: y}}}
}
