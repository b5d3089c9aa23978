package gesture

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/xqrs/columnlayout/anim"
	"github.com/xqrs/columnlayout/internal/logging"
	"github.com/xqrs/columnlayout/kinetic"
)

const (
	defaultDeceleration = kinetic.DefaultAcceleration

	// fallbackApproach is the time scale (ms) of the approach used when a
	// throw is too weak or points away from its target.
	fallbackApproach = 500
	// keyApproach is the time scale (ms) of a settle requested by SettleTo.
	keyApproach = 150
	// maxSettle is the longest settle accepted before the fallback
	// approach is used instead.
	maxSettle = 2500 * time.Millisecond
)

// stopRule is how a kinetic settle knows it is done.
type stopRule int

const (
	// stopAtTime ends at the estimated settle time.
	stopAtTime stopRule = iota
	// stopAtReversal ends once the velocity turns toward the acceleration.
	stopAtReversal
)

// kineticSettle moves a scroller along a decelerating trajectory tracked by
// a kinetic.Tracker, one frame at a time, and lands exactly on the target.
type kineticSettle struct {
	scroller Scroller
	handler  *anim.FrameHandler
	tracker  *kinetic.Tracker
	rule     stopRule

	deceleration float64
	last         float64
	target       float64
	until        time.Time

	log zerolog.Logger
}

func newKineticSettle(scroller Scroller, handler *anim.FrameHandler, deceleration float64, rule stopRule) *kineticSettle {
	if deceleration <= 0 {
		deceleration = defaultDeceleration
	}
	return &kineticSettle{
		scroller:     scroller,
		handler:      handler,
		tracker:      kinetic.NewTracker(handler, 0),
		rule:         rule,
		deceleration: deceleration,
		log:          logging.Component("gesture.settle"),
	}
}

// press stops any settle and starts tracking from the current position.
func (s *kineticSettle) press() {
	s.stop()
	s.tracker.SetPosition(s.scroller.ScrollPosition())
}

// follow records the scroller's position after a drag step.
func (s *kineticSettle) follow() {
	s.tracker.SetVelocityFromPosition(s.scroller.ScrollPosition())
}

// fling starts decelerating with the tracked velocity and returns where the
// motion would come to rest.
func (s *kineticSettle) fling() (position, velocity, estimate float64) {
	position = s.scroller.ScrollPosition()
	s.tracker.SetPosition(position)
	velocity = s.tracker.Velocity()
	if velocity == 0 {
		return position, 0, position
	}
	s.tracker.SetAcceleration(-math.Copysign(s.deceleration, velocity))
	return position, velocity, s.tracker.EstimateSettledPosition()
}

// start settles toward target. A throw that is too weak, too slow or aimed
// away from a target less than one column away is replaced by a fixed
// approach.
func (s *kineticSettle) start(target float64) {
	position := s.tracker.Position()
	distance := s.scroller.ColumnDistance()
	if target == position {
		s.land(position)
		return
	}

	velocity := s.tracker.Velocity()
	valid := velocity != 0
	if valid {
		s.tracker.SetAccelerationForTarget(target)
		d := s.tracker.EstimateSettledDuration()
		valid = d > 0
		if valid && math.Abs(target-position) < distance {
			valid = d <= maxSettle && math.Abs(s.tracker.EstimateSettledPosition()-target) <= 0.01*distance
		}
	}
	if !valid {
		s.approach(target, fallbackApproach)
		return
	}
	s.run(position, target)
}

// approach settles toward target with velocity distance/scale.
func (s *kineticSettle) approach(target float64, scale float64) {
	position := s.tracker.Position()
	if target == position {
		s.land(position)
		return
	}
	s.tracker.SetVelocity((target - position) / scale)
	s.tracker.SetAccelerationForTarget(target)
	s.run(position, target)
}

func (s *kineticSettle) run(position, target float64) {
	s.last = position
	s.target = target
	s.until = s.tracker.EstimateSettledTime()

	s.log.Debug().
		Float64("from", position).
		Float64("to", target).
		Dur("duration", s.until.Sub(s.handler.Now())).
		Msg("settle")

	s.handler.AddCallback(s)
}

// land moves the scroller exactly onto target and stops.
func (s *kineticSettle) land(target float64) {
	if d := s.scroller.ScrollPosition() - target; d != 0 {
		s.scroller.ScrollBy(d)
	}
	s.stop()
}

func (s *kineticSettle) stop() {
	s.handler.RemoveCallback(s)
	s.tracker.Stop()
}

func (s *kineticSettle) running() bool {
	return s.handler.Has(s)
}

// OnFrame implements anim.Callback.
func (s *kineticSettle) OnFrame(now time.Time) {
	done := false
	switch s.rule {
	case stopAtTime:
		done = !now.Before(s.until)
	case stopAtReversal:
		v, a := s.tracker.Velocity(), s.tracker.Acceleration()
		done = v == 0 || (v > 0) == (a > 0)
	}
	if done {
		s.land(s.target)
		return
	}

	position := s.tracker.Position()
	s.scroller.ScrollBy(s.last - position)
	s.last = position
}
