package gesture

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/xqrs/columnlayout/internal/logging"
)

// State is the touch state of a Detector.
type State int

const (
	// StateIdle means no pointer is down.
	StateIdle State = iota
	// StateDown means a pointer is down but has not moved past the slop.
	StateDown
	// StateDragging means the detector owns the gesture and scrolls the
	// deck.
	StateDragging
	// StateUnableToDrag means the gesture went to another axis or to
	// nested content.
	StateUnableToDrag
	// StateRearranging means a long press picked up an item.
	StateRearranging
)

var stateNames = [...]string{
	StateIdle:         "idle",
	StateDown:         "down",
	StateDragging:     "dragging",
	StateUnableToDrag: "unable-to-drag",
	StateRearranging:  "rearranging",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Config tunes a Detector.
type Config struct {
	Axis Axis
	// TouchSlop is the distance (cells) a pointer must travel before a drag
	// is recognized.
	TouchSlop float64
	// LongPressTimeout is how long a pointer must rest to start
	// rearranging.
	LongPressTimeout time.Duration
}

const (
	defaultTouchSlop        = 2
	defaultLongPressTimeout = 500 * time.Millisecond
	invalidPointer          = -1
)

type point struct {
	x, y float64
}

func (p point) along(axis Axis) float64 {
	if axis == AxisVertical {
		return p.y
	}
	return p.x
}

// Detector is the touch state machine of a deck. Every method must be
// called from the goroutine delivering events.
type Detector struct {
	config Config

	scroller   Scroller
	policy     Policy
	rearranger Rearranger
	nested     NestedScroll
	container  Container
	scheduler  Scheduler

	state         State
	activePointer int
	initial       point
	last          point
	longPress     *longPress

	log zerolog.Logger
}

// NewDetector returns an idle detector that scrolls scroller along
// config.Axis and hands released drags to policy.
func NewDetector(config Config, scroller Scroller, policy Policy) *Detector {
	if config.TouchSlop <= 0 {
		config.TouchSlop = defaultTouchSlop
	}
	if config.LongPressTimeout <= 0 {
		config.LongPressTimeout = defaultLongPressTimeout
	}
	return &Detector{
		config:        config,
		scroller:      scroller,
		policy:        policy,
		activePointer: invalidPointer,
		log:           logging.Component("gesture"),
	}
}

// SetRearranger enables long-press reordering. It needs a scheduler and
// only applies to vertical detectors.
func (d *Detector) SetRearranger(r Rearranger) *Detector {
	d.rearranger = r
	return d
}

// SetNestedScroll sets the content consulted before a drag is claimed.
func (d *Detector) SetNestedScroll(n NestedScroll) *Detector {
	d.nested = n
	return d
}

// SetContainer sets the container asked for exclusive pointer routing.
func (d *Detector) SetContainer(c Container) *Detector {
	d.container = c
	return d
}

// SetScheduler sets the scheduler for long-press detection.
func (d *Detector) SetScheduler(s Scheduler) *Detector {
	d.scheduler = s
	return d
}

// Policy returns the scroll policy.
func (d *Detector) Policy() Policy {
	return d.policy
}

// State returns the current touch state.
func (d *Detector) State() State {
	return d.state
}

// Config returns the detector's configuration with defaults applied.
func (d *Detector) Config() Config {
	return d.config
}

// Handle feeds one event to the state machine. It reports whether the
// detector owns the gesture, in which case the event must not reach the
// deck's content.
func (d *Detector) Handle(ev MotionEvent) bool {
	switch ev.Action {
	case ActionDown:
		d.down(ev)
	case ActionMove:
		d.move(ev)
	case ActionPointerDown:
		d.pointerDown(ev)
	case ActionPointerUp:
		d.pointerUp(ev)
	case ActionUp, ActionCancel:
		consumed := d.owns()
		d.release()
		return consumed
	}
	return d.owns()
}

func (d *Detector) owns() bool {
	return d.state == StateDragging || d.state == StateRearranging
}

func (d *Detector) setState(s State) {
	if d.state == s {
		return
	}
	d.log.Debug().Stringer("from", d.state).Stringer("to", s).Msg("touch state")
	d.state = s
}

func (d *Detector) down(ev MotionEvent) {
	if d.state != StateIdle {
		// The previous gesture never ended.
		d.release()
	}
	p, ok := ev.ActionPointer()
	if !ok {
		d.release()
		return
	}
	d.longPress.cancel()
	d.policy.Press()

	d.activePointer = p.ID
	d.initial = point{p.X, p.Y}
	d.last = d.initial
	d.setState(StateDown)

	if d.rearranger != nil && d.scheduler != nil && d.config.Axis == AxisVertical {
		d.longPress = armLongPress(d.scheduler, d.config.LongPressTimeout, d.longPressed)
	}
}

func (d *Detector) longPressed() {
	if d.state != StateDown || d.rearranger == nil {
		return
	}
	if !d.rearranger.StartRearrange(d.last.y) {
		return
	}
	d.setState(StateRearranging)
	d.requestExclusive(true)
}

func (d *Detector) move(ev MotionEvent) {
	if d.state == StateIdle {
		return
	}
	index := ev.FindPointerIndex(d.activePointer)
	if index < 0 {
		d.log.Debug().Int("pointer", d.activePointer).Msg("lost active pointer")
		d.release()
		return
	}
	p := point{ev.Pointers[index].X, ev.Pointers[index].Y}

	switch d.state {
	case StateDown:
		d.claim(p)
	case StateDragging:
		d.drag(p)
	case StateRearranging:
		delta := p.y - d.last.y
		d.last = p
		d.rearranger.RearrangeBy(delta)
	}
}

// claim decides whether the movement from the initial position starts a
// drag along the detector's axis.
func (d *Detector) claim(p point) {
	dx := p.x - d.initial.x
	dy := p.y - d.initial.y
	slop := d.config.TouchSlop

	var along, across float64
	var claimed bool
	if d.config.Axis == AxisVertical {
		along, across = dy, dx
		claimed = math.Abs(dy) > slop && math.Abs(dy) > math.Abs(dx)
	} else {
		along, across = dx, dy
		claimed = math.Abs(dx) > slop && math.Abs(dx)*0.5 > math.Abs(dy)
	}

	if !claimed {
		if math.Abs(along) > slop || math.Abs(across) > slop {
			d.longPress.cancel()
		}
		if math.Abs(across) > slop {
			d.setState(StateUnableToDrag)
		}
		return
	}

	d.longPress.cancel()
	if d.nested != nil && d.nested.CanScroll(d.initial.x, d.initial.y, d.config.Axis, along) {
		d.setState(StateUnableToDrag)
		return
	}

	// The drag starts at the slop boundary so the content does not jump
	// by the slop distance.
	edge := d.initial.along(d.config.Axis) + math.Copysign(slop, along)
	if d.config.Axis == AxisVertical {
		d.last = point{p.x, edge}
	} else {
		d.last = point{edge, p.y}
	}

	d.setState(StateDragging)
	d.requestExclusive(true)
	d.policy.StartDrag()
	d.drag(p)
}

func (d *Detector) drag(p point) {
	axis := d.config.Axis
	delta := p.along(axis) - d.last.along(axis)
	d.last = p
	if delta != 0 {
		d.policy.Drag(p.along(axis), delta)
	}
}

func (d *Detector) pointerDown(ev MotionEvent) {
	if d.state == StateIdle {
		return
	}
	p, ok := ev.ActionPointer()
	if !ok {
		return
	}
	d.activePointer = p.ID
	d.rebase(point{p.X, p.Y})
}

func (d *Detector) pointerUp(ev MotionEvent) {
	if d.state == StateIdle {
		return
	}
	d.longPress.cancel()

	p, ok := ev.ActionPointer()
	if !ok || p.ID != d.activePointer {
		return
	}
	for i, other := range ev.Pointers {
		if i == ev.ActionIndex {
			continue
		}
		d.activePointer = other.ID
		d.rebase(point{other.X, other.Y})
		return
	}
	d.activePointer = invalidPointer
}

// rebase moves the reference point to a new active pointer. Before a drag
// is claimed the slop is measured from there too.
func (d *Detector) rebase(p point) {
	d.last = p
	if d.state == StateDown {
		d.initial = p
	}
}

// release ends the touch session. A drag is handed to the policy to settle
// and a held item is put down.
func (d *Detector) release() {
	switch d.state {
	case StateDragging:
		d.policy.Release()
		d.requestExclusive(false)
	case StateRearranging:
		d.rearranger.FinishRearrange()
		d.requestExclusive(false)
	}

	d.longPress.cancel()
	d.longPress = nil
	d.activePointer = invalidPointer
	d.setState(StateIdle)
}

func (d *Detector) requestExclusive(exclusive bool) {
	if d.container != nil {
		d.container.RequestExclusive(exclusive)
	}
}
