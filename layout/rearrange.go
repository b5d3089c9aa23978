package layout

import (
	"time"

	"github.com/xqrs/columnlayout/anim"
)

// RearrangeConfig tunes card reordering. Zero values are replaced by
// defaults.
type RearrangeConfig struct {
	// EdgeBand is the fraction of the viewport height at the top and bottom
	// edge in which a held card scrolls the deck.
	// Default: 0.2
	EdgeBand float64
	// AutoScrollFactor converts the distance into the edge band (cells) to a
	// scroll velocity (cells/ms).
	// Default: 0.004
	AutoScrollFactor float64
	// SettleDuration is how long a released card takes to reach its resting
	// place.
	// Default: 150ms
	SettleDuration time.Duration
	// Interpolator eases the settle animation.
	// Default: anim.Decelerate
	Interpolator anim.Interpolator
}

func (c RearrangeConfig) withDefaults() RearrangeConfig {
	if c.EdgeBand <= 0 {
		c.EdgeBand = 0.2
	}
	if c.AutoScrollFactor <= 0 {
		c.AutoScrollFactor = 0.004
	}
	if c.SettleDuration <= 0 {
		c.SettleDuration = 150 * time.Millisecond
	}
	if c.Interpolator == nil {
		c.Interpolator = anim.Decelerate
	}
	return c
}

// RearrangeSession is the card being moved.
type RearrangeSession struct {
	// ActiveIndex is the current index of the held card. It follows the
	// card through every swap.
	ActiveIndex int
	// CurrentTop is where the held card is drawn.
	CurrentTop float64
}

// Session returns the active rearrange session.
func (v *Vertical) Session() (RearrangeSession, bool) {
	if v.session == nil {
		return RearrangeSession{}, false
	}
	return *v.session, true
}

// Rearranging reports whether a card is held or still settling.
func (v *Vertical) Rearranging() bool {
	return v.session != nil
}

// StartRearrange picks up the card under y. It reports false when there is
// nothing to pick up.
func (v *Vertical) StartRearrange(y float64) bool {
	if v.host == nil {
		return false
	}
	v.endRearrange()

	index := v.IndexAt(y)
	if index < 0 {
		return false
	}

	v.session = &RearrangeSession{
		ActiveIndex: index,
		CurrentTop:  v.RestingTop(index),
	}
	v.log.Debug().Int("index", index).Float64("y", y).Msg("rearrange started")

	v.apply()
	return true
}

// RearrangeBy moves the held card by delta cells, swapping it with every
// neighbour whose resting top it passes.
func (v *Vertical) RearrangeBy(delta float64) {
	if v.session == nil || v.settling() {
		return
	}

	v.session.CurrentTop += delta
	v.session.CurrentTop = max(0, min(v.height, v.session.CurrentTop))

	v.swapPassed()
	v.apply()
	v.updateAutoScroll()
}

// FinishRearrange releases the held card. It glides to its resting place
// and the session ends when it gets there.
func (v *Vertical) FinishRearrange() {
	if v.session == nil || v.settling() {
		return
	}
	v.handler.RemoveCallback(v.autoScroll)

	session := v.session
	from := session.CurrentTop
	to := v.RestingTop(session.ActiveIndex)
	v.log.Debug().Int("index", session.ActiveIndex).Msg("rearrange released")

	v.settle = anim.NewFloatAnimator(v.handler, v.config.SettleDuration, v.config.Interpolator, from, to, func(top float64) {
		session.CurrentTop = top
		v.apply()
	})
	v.settle.SetFinishFunc(func() {
		v.settle = nil
		v.session = nil
		v.apply()
	})
	v.settle.Start()
}

func (v *Vertical) settling() bool {
	return v.settle != nil && v.settle.Running()
}

// endRearrange drops any session at once.
func (v *Vertical) endRearrange() {
	if v.settle != nil {
		v.settle.Cancel()
		v.settle = nil
	}
	if v.handler != nil {
		v.handler.RemoveCallback(v.autoScroll)
	}
	if v.session != nil {
		v.session = nil
		if v.host != nil {
			v.apply()
		}
	}
}

func (v *Vertical) swapPassed() {
	count := itemCount(v.adapter)
	for {
		active := v.session.ActiveIndex
		switch {
		case active > 0 && v.session.CurrentTop < v.RestingTop(active-1):
			v.swap(active, active-1)
		case active < count-1 && v.session.CurrentTop > v.RestingTop(active+1):
			v.swap(active, active+1)
		default:
			return
		}
	}
}

func (v *Vertical) swap(from, to int) {
	v.adapter.OnRearranged(from, to)
	v.window.Swap(from, to)
	v.session.ActiveIndex = to
	v.log.Debug().Int("from", from).Int("to", to).Msg("rearranged")
}

// autoScrollVelocity returns the scroll velocity (cells/ms) caused by the
// held card sitting in an edge band.
func (v *Vertical) autoScrollVelocity() float64 {
	if v.session == nil {
		return 0
	}
	band := v.config.EdgeBand * v.height
	top := v.session.CurrentTop
	switch {
	case top < band:
		return (band - top) * v.config.AutoScrollFactor
	case top > v.height-band:
		return -(top - (v.height - band)) * v.config.AutoScrollFactor
	}
	return 0
}

func (v *Vertical) updateAutoScroll() {
	if v.autoScrollVelocity() == 0 {
		v.handler.RemoveCallback(v.autoScroll)
		return
	}
	if !v.handler.Has(v.autoScroll) {
		v.autoScroll.last = v.handler.Now()
		v.handler.AddCallback(v.autoScroll)
	}
}

// autoScroller scrolls the deck every frame while a held card is in an edge
// band.
type autoScroller struct {
	v    *Vertical
	last time.Time
}

func (a *autoScroller) OnFrame(now time.Time) {
	v := a.v
	elapsed := float64(now.Sub(a.last)) / float64(time.Millisecond)
	if elapsed <= 0 {
		return
	}
	a.last = now

	velocity := v.autoScrollVelocity()
	if velocity == 0 || v.settling() {
		v.handler.RemoveCallback(a)
		return
	}

	if !v.scroll(velocity * elapsed) {
		// Pinned against either end of the deck.
		v.handler.RemoveCallback(a)
		return
	}
	v.swapPassed()
	v.apply()
}
