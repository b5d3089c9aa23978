package columnlayout

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/xqrs/columnlayout/gesture"
	"github.com/xqrs/columnlayout/internal/logging"
	"github.com/xqrs/columnlayout/keybind"
	"github.com/xqrs/columnlayout/layout"
)

// placement is where the deck's manager put one attached column, relative to
// the inner rect.
type placement struct {
	width, height int
	x, y          float64
	depth         int
	seq           int
}

// ColumnLayout hosts a deck of columns. A layout.Manager decides which
// columns are attached and where; the ColumnLayout keeps those placements,
// draws the attached primitives back to front clipped to its inner rect, and
// turns mouse drags into gestures that scroll, fling and rearrange the deck.
//
// Content handles supplied by the adapter must be Primitives.
type ColumnLayout struct {
	*Box

	manager  layout.Manager
	adapter  layout.Adapter
	detector *gesture.Detector
	policy   gesture.Policy
	nav      *gesture.Navigator
	keyMap   DeckKeyMap

	placements map[Primitive]*placement
	seq        int
	laidOut    bool
	lastWidth  int
	lastHeight int

	// Pointer state while the left button is down.
	pressed      bool
	pressTarget  Scrollable
	lastX, lastY int
	exclusive    bool

	scrollBar *ScrollBar

	log zerolog.Logger
}

var (
	_ layout.Host          = (*ColumnLayout)(nil)
	_ gesture.NestedScroll = (*ColumnLayout)(nil)
	_ gesture.Container    = (*ColumnLayout)(nil)
)

// NewColumnLayout returns a deck driven by manager. Drags are settled by
// policy, which must scroll the same manager. Managers that can reorder
// their columns (see layout.Vertical) are rearranged after a long press.
func NewColumnLayout(manager layout.Manager, policy gesture.Policy, config gesture.Config) *ColumnLayout {
	config.Axis = gesture.AxisHorizontal
	if manager.Orientation() == layout.OrientationVertical {
		config.Axis = gesture.AxisVertical
	}

	c := &ColumnLayout{
		Box:        NewBox(),
		manager:    manager,
		policy:     policy,
		nav:        gesture.NewNavigator(manager, policy),
		keyMap:     DefaultDeckKeyMap(),
		placements: make(map[Primitive]*placement),
		scrollBar:  NewScrollBar(config.Axis == gesture.AxisHorizontal),
		log:        logging.Component("columns"),
	}
	c.detector = gesture.NewDetector(config, manager, policy).
		SetNestedScroll(c).
		SetContainer(c)
	if rearranger, ok := manager.(gesture.Rearranger); ok {
		c.detector.SetRearranger(rearranger)
	}
	c.SetBorders(BordersAll)
	return c
}

// SetScheduler sets the timer source for long presses. Without one, cards
// cannot be picked up.
func (c *ColumnLayout) SetScheduler(scheduler gesture.Scheduler) *ColumnLayout {
	c.detector.SetScheduler(scheduler)
	return c
}

// SetAdapter sets the deck's columns and lays them out.
func (c *ColumnLayout) SetAdapter(adapter layout.Adapter) *ColumnLayout {
	if c.manager.Host() != nil {
		c.manager.Detach()
	}
	c.adapter = adapter
	c.laidOut = false
	c.layoutIfNeeded()
	c.MarkDirty()
	return c
}

// SetKeyMap replaces the deck's key bindings.
func (c *ColumnLayout) SetKeyMap(keyMap DeckKeyMap) *ColumnLayout {
	c.keyMap = keyMap
	return c
}

// GetKeyMap returns the deck's key bindings.
func (c *ColumnLayout) GetKeyMap() DeckKeyMap {
	return c.keyMap
}

// Manager returns the deck's layout manager.
func (c *ColumnLayout) Manager() layout.Manager {
	return c.manager
}

// Detector returns the deck's gesture detector.
func (c *ColumnLayout) Detector() *gesture.Detector {
	return c.detector
}

// Policy returns the deck's scroll policy.
func (c *ColumnLayout) Policy() gesture.Policy {
	return c.policy
}

// SetRect sets the deck's position and re-lays out its columns if the inner
// size changed.
func (c *ColumnLayout) SetRect(x, y, width, height int) {
	c.Box.SetRect(x, y, width, height)
	c.layoutIfNeeded()
}

func (c *ColumnLayout) layoutIfNeeded() {
	if c.adapter == nil {
		return
	}
	_, _, width, height := c.GetInnerRect()
	switch {
	case c.manager.Host() == nil || !c.laidOut:
		c.manager.Attach(c, c.adapter)
	case width != c.lastWidth || height != c.lastHeight:
		c.manager.Relayout()
	default:
		return
	}
	c.laidOut = true
	c.lastWidth, c.lastHeight = width, height
}

// Size implements layout.Host.
func (c *ColumnLayout) Size() (width, height int) {
	_, _, width, height = c.GetInnerRect()
	return width, height
}

// Attach implements layout.Host.
func (c *ColumnLayout) Attach(h layout.ContentHandle, width, height int) {
	p, ok := h.(Primitive)
	if !ok {
		c.log.Warn().Type("handle", h).Msg("column content is not a primitive")
		return
	}
	c.seq++
	c.placements[p] = &placement{width: width, height: height, seq: c.seq}
	bindDirtyParent(p, c.Box)
	c.MarkDirty()
}

// Detach implements layout.Host.
func (c *ColumnLayout) Detach(h layout.ContentHandle) {
	p, ok := h.(Primitive)
	if !ok {
		return
	}
	if _, attached := c.placements[p]; !attached {
		return
	}
	delete(c.placements, p)
	unbindDirtyParent(p, c.Box)
	if hl, ok := p.(Highlighter); ok {
		hl.SetHighlight(HighlightNone)
	}
	c.MarkDirty()
}

// SetOffset implements layout.Host.
func (c *ColumnLayout) SetOffset(h layout.ContentHandle, x, y float64) {
	if pl := c.placementOf(h); pl != nil && (pl.x != x || pl.y != y) {
		pl.x, pl.y = x, y
		c.MarkDirty()
	}
}

// SetDepth implements layout.Host.
func (c *ColumnLayout) SetDepth(h layout.ContentHandle, depth int) {
	if pl := c.placementOf(h); pl != nil && pl.depth != depth {
		pl.depth = depth
		c.MarkDirty()
	}
}

func (c *ColumnLayout) placementOf(h layout.ContentHandle) *placement {
	p, ok := h.(Primitive)
	if !ok {
		return nil
	}
	return c.placements[p]
}

// Attached returns the attached columns in drawing order, bottom first.
func (c *ColumnLayout) Attached() []Primitive {
	items := make([]Primitive, 0, len(c.placements))
	for p := range c.placements {
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := c.placements[items[i]], c.placements[items[j]]
		if a.depth != b.depth {
			return a.depth < b.depth
		}
		return a.seq < b.seq
	})
	return items
}

// contentAt returns the topmost attached column covering screen cell x, y.
func (c *ColumnLayout) contentAt(x, y int) Primitive {
	items := c.Attached()
	for i := len(items) - 1; i >= 0; i-- {
		rx, ry, w, h := c.screenRect(items[i])
		if x >= rx && x < rx+w && y >= ry && y < ry+h {
			return items[i]
		}
	}
	return nil
}

// screenRect converts a placement to screen coordinates.
func (c *ColumnLayout) screenRect(p Primitive) (x, y, width, height int) {
	pl := c.placements[p]
	innerX, innerY, _, _ := c.GetInnerRect()
	return innerX + int(math.Round(pl.x)), innerY + int(math.Round(pl.y)), pl.width, pl.height
}

// CanScroll implements gesture.NestedScroll for content under the pointer.
func (c *ColumnLayout) CanScroll(x, y float64, axis gesture.Axis, delta float64) bool {
	innerX, innerY, _, _ := c.GetInnerRect()
	scrollable, ok := c.contentAt(innerX+int(x), innerY+int(y)).(Scrollable)
	if !ok {
		return false
	}
	return scrollable.CanScroll(axis == gesture.AxisHorizontal, delta)
}

// RequestExclusive implements gesture.Container.
func (c *ColumnLayout) RequestExclusive(exclusive bool) {
	if c.exclusive != exclusive {
		c.log.Debug().Bool("exclusive", exclusive).Msg("pointer routing")
	}
	c.exclusive = exclusive
}

// IsDirty reports whether the deck or any attached column needs a redraw.
func (c *ColumnLayout) IsDirty() bool {
	if c.Box.IsDirty() || c.scrollBar.IsDirty() {
		return true
	}
	for p := range c.placements {
		if tracker, ok := p.(dirtyTracker); ok && tracker.IsDirty() {
			return true
		}
	}
	return false
}

// MarkClean marks the deck and its attached columns as clean.
func (c *ColumnLayout) MarkClean() {
	c.Box.MarkClean()
	c.scrollBar.MarkClean()
	for p := range c.placements {
		if tracker, ok := p.(dirtyTracker); ok {
			tracker.MarkClean()
		}
	}
}

// Draw draws the deck frame, then the attached columns.
func (c *ColumnLayout) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)
	c.layoutIfNeeded()

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	current, held := c.highlighted()
	clip := newClipScreen(screen, x, y, width, height)
	for _, p := range c.Attached() {
		if hl, ok := p.(Highlighter); ok {
			switch p {
			case held:
				hl.SetHighlight(HighlightHeld)
			case current:
				hl.SetHighlight(HighlightCurrent)
			default:
				hl.SetHighlight(HighlightNone)
			}
		}
		p.SetRect(c.screenRect(p))
		p.Draw(clip)
	}

	c.drawScrollBar(screen)
}

// highlighted returns the column under keyboard navigation and the held
// card, if any.
func (c *ColumnLayout) highlighted() (current, held Primitive) {
	if c.adapter == nil || c.manager.ColumnCount() == 0 {
		return nil, nil
	}
	if c.HasFocus() {
		current, _ = c.adapter.ContentAt(c.manager.CurrentIndex()).(Primitive)
	}
	if sessions, ok := c.manager.(interface {
		Session() (layout.RearrangeSession, bool)
	}); ok {
		if session, active := sessions.Session(); active {
			held, _ = c.adapter.ContentAt(session.ActiveIndex).(Primitive)
		}
	}
	return current, held
}

// drawScrollBar draws the deck position over the bottom (or right) border.
func (c *ColumnLayout) drawScrollBar(screen tcell.Screen) {
	x, y, width, height := c.GetRect()
	_, _, innerWidth, innerHeight := c.GetInnerRect()
	count := c.manager.ColumnCount()
	distance := c.manager.ColumnDistance()

	if c.manager.Orientation() == layout.OrientationHorizontal {
		if !c.GetBorders().Has(BordersBottom) || c.GetFooter() != "" {
			return
		}
		c.scrollBar.SetRect(x+1, y+height-1, width-2, 1)
		c.scrollBar.SetLengths(ScrollLengths{
			ContentLen:  int(math.Round(float64(max(count-1, 0))*distance)) + innerWidth,
			ViewportLen: innerWidth,
		})
	} else {
		if !c.GetBorders().Has(BordersRight) {
			return
		}
		c.scrollBar.SetRect(x+width-1, y+1, 1, height-2)
		c.scrollBar.SetLengths(ScrollLengths{
			ContentLen:  int(math.Round(float64(max(count-1, 0))*distance)) + innerHeight,
			ViewportLen: innerHeight,
		})
	}
	c.scrollBar.SetOffset(int(math.Round(c.manager.ScrollPosition())))
	c.scrollBar.Draw(screen)
}

// InputHandler moves through the deck with the bound keys. Other keys go to
// the current column.
func (c *ColumnLayout) InputHandler(event *tcell.EventKey) Command {
	switch {
	case keybind.Matches(event, c.keyMap.Quit):
		return QuitCommand{}
	case keybind.Matches(event, c.keyMap.Next):
		c.nav.Step(1)
	case keybind.Matches(event, c.keyMap.Previous):
		c.nav.Step(-1)
	case keybind.Matches(event, c.keyMap.First):
		c.nav.GoTo(0)
	case keybind.Matches(event, c.keyMap.Last):
		c.nav.Last()
	default:
		if c.adapter == nil || c.manager.ColumnCount() == 0 {
			return nil
		}
		if p, ok := c.adapter.ContentAt(c.manager.CurrentIndex()).(Primitive); ok {
			return p.InputHandler(event)
		}
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler feeds left-button drags to the gesture detector and steps
// through the deck with the wheel.
func (c *ColumnLayout) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	innerX, innerY, _, _ := c.GetInnerRect()
	relX, relY := float64(x-innerX), float64(y-innerY)

	switch action {
	case MouseLeftDown:
		if !c.InInnerRect(x, y) {
			return nil, nil
		}
		c.pressed = true
		c.pressTarget, _ = c.contentAt(x, y).(Scrollable)
		c.lastX, c.lastY = x, y
		c.detector.Handle(gesture.Single(gesture.ActionDown, relX, relY))
		return c, AppendCommand(SetFocusCommand{Target: c}, RedrawCommand{})

	case MouseMove:
		if !c.pressed {
			return nil, nil
		}
		owned := c.detector.Handle(gesture.Single(gesture.ActionMove, relX, relY))
		if !owned && !c.exclusive && c.pressTarget != nil && c.detector.State() == gesture.StateUnableToDrag {
			c.pressTarget.ScrollContent(true, float64(x-c.lastX))
			c.pressTarget.ScrollContent(false, float64(y-c.lastY))
		}
		c.lastX, c.lastY = x, y
		return c, RedrawCommand{}

	case MouseLeftUp:
		if !c.pressed {
			return nil, nil
		}
		c.pressed = false
		c.pressTarget = nil
		c.detector.Handle(gesture.Single(gesture.ActionUp, relX, relY))
		return nil, RedrawCommand{}

	case MouseScrollUp, MouseScrollDown, MouseScrollLeft, MouseScrollRight:
		if c.pressed || !c.InInnerRect(x, y) {
			return nil, nil
		}
		return nil, c.wheel(action, x, y)
	}

	if c.pressed {
		return c, nil
	}
	return nil, nil
}

func (c *ColumnLayout) wheel(action MouseAction, x, y int) Command {
	forward := action == MouseScrollDown || action == MouseScrollRight
	sideways := action == MouseScrollLeft || action == MouseScrollRight

	// A vertical wheel over a side-by-side deck scrolls the column's own
	// content first.
	if !sideways && c.manager.Orientation() == layout.OrientationHorizontal {
		if scrollable, ok := c.contentAt(x, y).(Scrollable); ok {
			delta := 1.0
			if forward {
				delta = -1
			}
			if scrollable.CanScroll(false, delta) {
				scrollable.ScrollContent(false, delta)
				return RedrawCommand{}
			}
		}
	}

	if forward {
		c.nav.Step(1)
	} else {
		c.nav.Step(-1)
	}
	return RedrawCommand{}
}
