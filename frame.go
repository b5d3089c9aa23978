package columnlayout

import "github.com/gdamore/tcell/v2"

// Frame stacks a main primitive above a fixed-height footer, such as a help
// bar. Keys and focus go to the main primitive.
type Frame struct {
	*Box

	main         Primitive
	footer       Primitive
	footerHeight int
}

// NewFrame returns a frame around main. footer may be nil.
func NewFrame(main, footer Primitive, footerHeight int) *Frame {
	f := &Frame{
		Box:          NewBox(),
		main:         main,
		footer:       footer,
		footerHeight: max(footerHeight, 0),
	}
	bindDirtyParent(main, f.Box)
	if footer != nil {
		bindDirtyParent(footer, f.Box)
	}
	return f
}

// SetRect splits the rect between the main primitive and the footer.
func (f *Frame) SetRect(x, y, width, height int) {
	f.Box.SetRect(x, y, width, height)
	footerHeight := f.footerHeight
	if f.footer == nil {
		footerHeight = 0
	}
	footerHeight = min(footerHeight, height)
	f.main.SetRect(x, y, width, height-footerHeight)
	if f.footer != nil {
		f.footer.SetRect(x, y+height-footerHeight, width, footerHeight)
	}
}

// Draw draws the main primitive, then the footer.
func (f *Frame) Draw(screen tcell.Screen) {
	f.main.Draw(screen)
	if f.footer != nil && f.footerHeight > 0 {
		f.footer.Draw(screen)
	}
}

// InputHandler passes key events to the main primitive.
func (f *Frame) InputHandler(event *tcell.EventKey) Command {
	return f.main.InputHandler(event)
}

// MouseHandler passes mouse events to the primitive under the pointer.
func (f *Frame) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if f.footer != nil {
		x, y, width, height := f.footer.GetRect()
		px, py := event.Position()
		if px >= x && px < x+width && py >= y && py < y+height {
			return f.footer.MouseHandler(action, event)
		}
	}
	return f.main.MouseHandler(action, event)
}

// Focus delegates the focus to the main primitive.
func (f *Frame) Focus(delegate func(p Primitive)) {
	delegate(f.main)
}

// HasFocus returns whether the main primitive has focus.
func (f *Frame) HasFocus() bool {
	return f.main.HasFocus()
}

// IsDirty reports whether the frame or a child needs a redraw.
func (f *Frame) IsDirty() bool {
	if f.Box.IsDirty() {
		return true
	}
	for _, child := range []Primitive{f.main, f.footer} {
		if tracker, ok := child.(dirtyTracker); ok && tracker.IsDirty() {
			return true
		}
	}
	return false
}

// MarkClean marks the frame and its children as clean.
func (f *Frame) MarkClean() {
	f.Box.MarkClean()
	for _, child := range []Primitive{f.main, f.footer} {
		if tracker, ok := child.(dirtyTracker); ok {
			tracker.MarkClean()
		}
	}
}
