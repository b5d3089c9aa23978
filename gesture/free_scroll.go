package gesture

import (
	"math"

	"github.com/xqrs/columnlayout/anim"
)

// FreeScroll lets a fling run out and then snaps to the nearest column
// boundary, however many columns that is.
type FreeScroll struct {
	scroller Scroller
	settle   *kineticSettle
}

var _ Policy = (*FreeScroll)(nil)

// NewFreeScroll returns a free-scroll policy decelerating flings at
// deceleration cells/ms².
func NewFreeScroll(scroller Scroller, handler *anim.FrameHandler, deceleration float64) *FreeScroll {
	return &FreeScroll{
		scroller: scroller,
		settle:   newKineticSettle(scroller, handler, deceleration, stopAtReversal),
	}
}

func (f *FreeScroll) Press()     { f.settle.press() }
func (f *FreeScroll) StartDrag() { f.settle.press() }

func (f *FreeScroll) Drag(_, delta float64) {
	f.scroller.ScrollBy(delta)
	f.settle.follow()
}

func (f *FreeScroll) Release() {
	distance := f.scroller.ColumnDistance()
	if distance <= 0 {
		f.settle.stop()
		return
	}
	_, _, estimate := f.settle.fling()
	f.settle.start(clampTarget(f.scroller, math.Round(estimate/distance)*distance))
}

func (f *FreeScroll) SettleTo(index int) {
	f.settle.press()
	f.settle.approach(clampTarget(f.scroller, float64(index)*f.scroller.ColumnDistance()), keyApproach)
}

func (f *FreeScroll) Stop()          { f.settle.stop() }
func (f *FreeScroll) Settling() bool { return f.settle.running() }
