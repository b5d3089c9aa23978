package gesture

import (
	"math"

	"github.com/xqrs/columnlayout/anim"
)

// Paging follows the pointer during a drag and, on release, snaps to a
// column boundary. The target never lies behind the direction of the throw
// and is never more than one boundary past the column the throw started
// in.
type Paging struct {
	scroller Scroller
	settle   *kineticSettle
}

var _ Policy = (*Paging)(nil)

// NewPaging returns a paging policy decelerating flings at deceleration
// cells/ms².
func NewPaging(scroller Scroller, handler *anim.FrameHandler, deceleration float64) *Paging {
	return &Paging{
		scroller: scroller,
		settle:   newKineticSettle(scroller, handler, deceleration, stopAtTime),
	}
}

func (p *Paging) Press()     { p.settle.press() }
func (p *Paging) StartDrag() { p.settle.press() }

func (p *Paging) Drag(_, delta float64) {
	p.scroller.ScrollBy(delta)
	p.settle.follow()
}

func (p *Paging) Release() {
	distance := p.scroller.ColumnDistance()
	if distance <= 0 {
		p.settle.stop()
		return
	}
	position, velocity, estimate := p.settle.fling()
	p.settle.start(clampTarget(p.scroller, pagingTarget(position, velocity, estimate, distance)))
}

func (p *Paging) SettleTo(index int) {
	p.settle.press()
	p.settle.approach(clampTarget(p.scroller, float64(index)*p.scroller.ColumnDistance()), keyApproach)
}

func (p *Paging) Stop()          { p.settle.stop() }
func (p *Paging) Settling() bool { return p.settle.running() }

// pagingTarget picks the resting position of a throw released at position
// with the given velocity and estimated resting position.
func pagingTarget(position, velocity, estimate, distance float64) float64 {
	if velocity == 0 {
		return math.Round(position/distance) * distance
	}

	current := math.Floor(position / distance)
	landing := math.Floor(estimate / distance)
	switch {
	case landing > current:
		return (current + 1) * distance
	case landing < current:
		return current * distance
	}

	target := math.Round(estimate/distance) * distance
	switch {
	case velocity > 0 && target < position:
		target = math.Ceil(position/distance) * distance
	case velocity < 0 && target > position:
		target = math.Floor(position/distance) * distance
	}
	return target
}
