package columnlayout

import "github.com/gdamore/tcell/v2"

// Primitive is the top-most interface for everything drawn on screen.
type Primitive interface {
	// Draw draws this primitive onto the screen.
	Draw(screen tcell.Screen)

	// GetRect returns the current position of the primitive, x, y, width, and
	// height.
	GetRect() (int, int, int, int)
	// SetRect sets a new position of the primitive.
	SetRect(x, y, width, height int)

	// InputHandler receives key events when this primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse events. The returned capture primitive (if
	// non-nil) receives follow-up mouse events until the capture is released.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command)

	// HasFocus determines if the primitive has focus. This function must return
	// true also if one of this primitive's child elements has focus.
	HasFocus() bool
	// Focus is called by the application when the primitive receives focus.
	Focus(delegate func(p Primitive))
	// Blur is called by the application when the primitive loses focus.
	Blur()
}

// Scrollable is implemented by primitives with content of their own that a
// pointer drag may scroll before the enclosing deck does.
//
// Deltas follow the pointer: a positive delta drags the content right (or
// down) and so reveals what lies before it.
type Scrollable interface {
	Primitive
	// CanScroll reports whether the content can follow a drag of delta cells
	// along the vertical (or, if horizontal is set, the horizontal) axis.
	CanScroll(horizontal bool, delta float64) bool
	// ScrollContent moves the content by delta cells, clamped to its ends.
	ScrollContent(horizontal bool, delta float64)
}
