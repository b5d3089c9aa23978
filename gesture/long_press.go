package gesture

import "time"

// longPress is a one-shot deferred detection. Cancelling after it fired has
// no effect.
type longPress struct {
	timer     Timer
	cancelled bool
	detected  bool
}

func armLongPress(s Scheduler, timeout time.Duration, fire func()) *longPress {
	lp := &longPress{}
	lp.timer = s.AfterFunc(timeout, func() {
		if lp.cancelled {
			return
		}
		lp.detected = true
		fire()
	})
	return lp
}

func (lp *longPress) cancel() {
	if lp == nil || lp.detected {
		return
	}
	lp.cancelled = true
	if lp.timer != nil {
		lp.timer.Stop()
	}
}
