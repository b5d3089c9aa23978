package anim

import "time"

// Animator is a timed animation. While running it reports the elapsed time
// and the interpolated progress every frame. When the elapsed time reaches
// the duration it reports exactly one final update at progress 1, removes
// itself from the frame handler and then calls the finish function.
type Animator struct {
	handler      *FrameHandler
	duration     time.Duration
	interpolator Interpolator

	update func(elapsed time.Duration, progress float64)
	finish func()

	start   time.Time
	running bool
}

// NewAnimator returns a stopped animator. A nil interpolator means Linear.
func NewAnimator(handler *FrameHandler, duration time.Duration, interpolator Interpolator, update func(elapsed time.Duration, progress float64)) *Animator {
	if interpolator == nil {
		interpolator = Linear
	}
	return &Animator{
		handler:      handler,
		duration:     duration,
		interpolator: interpolator,
		update:       update,
	}
}

// SetFinishFunc sets the function called once the animation completes. It
// is not called when the animation is cancelled.
func (a *Animator) SetFinishFunc(finish func()) *Animator {
	a.finish = finish
	return a
}

// Duration returns the animation's duration.
func (a *Animator) Duration() time.Duration {
	return a.duration
}

// Running reports whether the animation is registered for frames.
func (a *Animator) Running() bool {
	return a.running
}

// Start (re)starts the animation from the handler's current time.
func (a *Animator) Start() {
	a.start = a.handler.Now()
	a.running = true
	a.handler.AddCallback(a)
}

// Cancel stops the animation without the final update and without calling
// the finish function.
func (a *Animator) Cancel() {
	a.running = false
	a.handler.RemoveCallback(a)
}

// OnFrame implements Callback.
func (a *Animator) OnFrame(now time.Time) {
	if !a.running {
		return
	}

	elapsed := now.Sub(a.start)
	if elapsed < a.duration {
		progress := float64(elapsed) / float64(a.duration)
		if progress < 0 {
			progress = 0
		}
		a.emit(elapsed, a.interpolator(progress))
		return
	}

	a.running = false
	a.emit(a.duration, 1)
	a.handler.RemoveCallback(a)
	if a.finish != nil {
		a.finish()
	}
}

func (a *Animator) emit(elapsed time.Duration, progress float64) {
	if a.update != nil {
		a.update(elapsed, progress)
	}
}

// FloatAnimator animates a value from one number to another.
type FloatAnimator struct {
	*Animator

	from, to float64
	value    float64
}

// NewFloatAnimator returns a stopped animator reporting values between from
// and to.
func NewFloatAnimator(handler *FrameHandler, duration time.Duration, interpolator Interpolator, from, to float64, onValue func(value float64)) *FloatAnimator {
	f := &FloatAnimator{from: from, to: to, value: from}
	f.Animator = NewAnimator(handler, duration, interpolator, func(_ time.Duration, progress float64) {
		f.value = f.from + (f.to-f.from)*progress
		if onValue != nil {
			onValue(f.value)
		}
	})
	return f
}

// Value returns the most recently reported value.
func (f *FloatAnimator) Value() float64 {
	return f.value
}

// From returns the start value.
func (f *FloatAnimator) From() float64 {
	return f.from
}

// To returns the end value.
func (f *FloatAnimator) To() float64 {
	return f.to
}
