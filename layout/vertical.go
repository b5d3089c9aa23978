package layout

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/xqrs/columnlayout/anim"
	"github.com/xqrs/columnlayout/internal/logging"
)

const (
	// cardsPerViewport is how many card steps one viewport height of
	// scrolling covers.
	cardsPerViewport = 5
	// stackExponent bends the card tops so that cards bunch up at the top of
	// the viewport and spread out toward the bottom.
	stackExponent = 1.3
)

// Vertical stacks columns as full-size cards. Card p rests at
//
//	top(p) = ((p/5 + position/H)^1.3)·H
//
// where H is the viewport height and position ≤ 0 is the scroll position;
// cards whose base is not positive rest at the top edge. Later cards are
// drawn over earlier ones. A long press picks a card up so it can be moved
// to another place in the deck.
type Vertical struct {
	binding

	adapter  Adapter
	handler  *anim.FrameHandler
	config   RearrangeConfig
	position float64

	width, height float64
	window        *Window

	session    *RearrangeSession
	autoScroll *autoScroller
	settle     *anim.FloatAnimator

	log zerolog.Logger
}

var _ Manager = (*Vertical)(nil)

// NewVertical returns an unattached manager. handler drives the rearrange
// auto-scroll and settle animations.
func NewVertical(handler *anim.FrameHandler, config RearrangeConfig) *Vertical {
	log := logging.Component("layout.vertical")
	v := &Vertical{
		handler: handler,
		config:  config.withDefaults(),
		window:  newWindow(log),
		log:     log,
	}
	v.autoScroll = &autoScroller{v: v}
	return v
}

// Attach implements Manager.
func (v *Vertical) Attach(host Host, adapter Adapter) {
	v.bind(host)
	v.endRearrange()
	v.adapter = adapter
	v.window.Reset()
	v.window.bind(host, adapter)
	v.Relayout()
}

// Detach implements Manager.
func (v *Vertical) Detach() {
	v.endRearrange()
	v.window.Reset()
	v.window.bind(nil, nil)
	v.unbind()
	v.adapter = nil
}

// Relayout implements Manager.
func (v *Vertical) Relayout() {
	if v.host == nil {
		return
	}
	v.width, v.height = v.viewport()
	v.position = v.clampPosition(v.position)
	v.window.Reset()
	v.apply()
}

// Position returns the raw scroll position, which is never positive.
func (v *Vertical) Position() float64 {
	return v.position
}

// ScrollBy implements Manager. The position is kept between
// -(count-1)·H/5 and 0.
func (v *Vertical) ScrollBy(delta float64) {
	if v.host == nil || delta == 0 {
		return
	}
	if v.scroll(delta) {
		v.apply()
	}
}

func (v *Vertical) scroll(delta float64) bool {
	prev := v.position
	prevIndex := v.CurrentIndex()
	v.position = v.clampPosition(v.position + delta)
	if index := v.CurrentIndex(); index != prevIndex {
		v.log.Debug().Int("index", index).Msg("current index")
	}
	return v.position != prev
}

func (v *Vertical) clampPosition(position float64) float64 {
	lowest := -float64(max(itemCount(v.adapter)-1, 0)) * v.ColumnDistance()
	return math.Max(lowest, math.Min(0, position))
}

// ScrollPosition implements Manager.
func (v *Vertical) ScrollPosition() float64 {
	return -v.position
}

// ColumnDistance implements Manager.
func (v *Vertical) ColumnDistance() float64 {
	return v.height / cardsPerViewport
}

// CurrentIndex implements Manager. It is the topmost card that has not been
// scrolled away.
func (v *Vertical) CurrentIndex() int {
	count := itemCount(v.adapter)
	if count == 0 || v.height <= 0 {
		return 0
	}
	return clampInt(int(-cardsPerViewport*v.position/v.height), 0, count-1)
}

// ColumnCount implements Manager.
func (v *Vertical) ColumnCount() int {
	return itemCount(v.adapter)
}

// Orientation implements Manager.
func (v *Vertical) Orientation() Orientation {
	return OrientationVertical
}

// VisibleRange implements Manager. It runs from the current card to the
// last card resting above the bottom edge, widened to include a card that
// is being moved.
func (v *Vertical) VisibleRange() VisibleRange {
	count := itemCount(v.adapter)
	if count == 0 || v.host == nil || v.height <= 0 {
		return EmptyRange
	}

	low := v.CurrentIndex()
	high := low
	for high+1 < count && v.RestingTop(high+1) < v.height {
		high++
	}

	if v.session != nil {
		low = min(low, v.session.ActiveIndex)
		high = max(high, v.session.ActiveIndex)
	}
	return VisibleRange{Low: low, High: high}
}

// RestingTop returns the top edge of card index when it is not being moved.
func (v *Vertical) RestingTop(index int) float64 {
	if v.height <= 0 {
		return 0
	}
	base := float64(index)/cardsPerViewport + v.position/v.height
	if base <= 0 {
		return 0
	}
	return math.Pow(base, stackExponent) * v.height
}

// IndexAt returns the card whose resting area contains y, clamped to the
// deck.
func (v *Vertical) IndexAt(y float64) int {
	count := itemCount(v.adapter)
	if count == 0 || v.height <= 0 {
		return -1
	}

	base := 0.0
	if y > 0 {
		base = math.Pow(y/v.height, 1/stackExponent)
	}
	index := int(math.Floor(cardsPerViewport * (base - v.position/v.height)))
	return clampInt(index, v.CurrentIndex(), count-1)
}

// Top returns where card index is currently drawn.
func (v *Vertical) Top(index int) float64 {
	if v.session != nil && v.session.ActiveIndex == index {
		return v.session.CurrentTop
	}
	return v.RestingTop(index)
}

func (v *Vertical) apply() {
	next := v.VisibleRange()
	if next != v.window.Range() {
		v.log.Debug().Stringer("range", next).Msg("visible range")
	}
	v.window.Update(next, int(v.width), int(v.height))

	if next.Empty() {
		return
	}
	for i := next.Low; i <= next.High; i++ {
		h, ok := v.window.Handle(i)
		if !ok {
			continue
		}
		depth := i
		if v.session != nil && v.session.ActiveIndex == i {
			depth = itemCount(v.adapter)
		}
		v.host.SetDepth(h, depth)
		v.host.SetOffset(h, 0, v.Top(i))
	}
}
