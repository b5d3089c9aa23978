// Package kinetic tracks a one-dimensional position moving under constant
// acceleration. It is used to measure drag velocity and to predict where a
// flung scroll comes to rest.
package kinetic

import (
	"math"
	"time"
)

// DefaultAcceleration is the acceleration (cells/ms²) a new Tracker starts
// with when none is given.
const DefaultAcceleration = 0.001

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// Tracker holds position (cells), velocity (cells/ms) and acceleration
// (cells/ms²). State advances lazily: every read and every write first
// integrates the time elapsed since the previous access, so the motion stays
// continuous across mutations.
//
// Velocity and acceleration only change through their setters and through
// the integration step.
type Tracker struct {
	clock Clock
	last  time.Time

	position     float64
	velocity     float64
	acceleration float64
}

// NewTracker returns a tracker at rest at position 0.
func NewTracker(clock Clock, acceleration float64) *Tracker {
	if clock == nil {
		clock = SystemClock()
	}
	return &Tracker{
		clock:        clock,
		last:         clock.Now(),
		acceleration: acceleration,
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// advance integrates the elapsed time since the last access.
func (t *Tracker) advance() {
	now := t.clock.Now()
	d := millis(now.Sub(t.last))
	t.last = now

	t.position += t.velocity*d + t.acceleration*d*d/2
	t.velocity += t.acceleration * d
}

// Position returns the current position.
func (t *Tracker) Position() float64 {
	t.advance()
	return t.position
}

// SetPosition sets the current position without affecting velocity or
// acceleration.
func (t *Tracker) SetPosition(position float64) {
	t.advance()
	t.position = position
}

// Velocity returns the current velocity.
func (t *Tracker) Velocity() float64 {
	t.advance()
	return t.velocity
}

// SetVelocity sets the current velocity.
func (t *Tracker) SetVelocity(velocity float64) {
	t.advance()
	t.velocity = velocity
}

// Acceleration returns the current acceleration.
func (t *Tracker) Acceleration() float64 {
	t.advance()
	return t.acceleration
}

// SetAcceleration sets the acceleration.
func (t *Tracker) SetAcceleration(acceleration float64) {
	t.advance()
	t.acceleration = acceleration
}

// SetVelocityFromPosition measures the velocity from the distance between
// the stored position and the given one over the time since the last access,
// and stores the given position.
//
// The measured value is averaged with the previous velocity unless the
// previous velocity is exactly zero. A zero or non-finite measurement (no
// time elapsed) leaves the velocity unchanged.
func (t *Tracker) SetVelocityFromPosition(position float64) {
	now := t.clock.Now()
	dx := position - t.position
	dt := millis(now.Sub(t.last))
	t.last = now

	measured := dx / dt
	if measured != 0 && !math.IsInf(measured, 0) && !math.IsNaN(measured) {
		if t.velocity == 0 {
			t.velocity = measured
		} else {
			t.velocity = (t.velocity + measured) / 2
		}
	}

	t.position = position
}

// SetAccelerationForTarget sets the acceleration so that the current
// velocity decays to zero exactly at target. When target equals the current
// position both velocity and acceleration are cleared.
func (t *Tracker) SetAccelerationForTarget(target float64) {
	t.advance()

	distance := target - t.position
	if distance == 0 {
		t.velocity = 0
		t.acceleration = 0
		return
	}
	t.acceleration = -t.velocity * t.velocity / (2 * distance)
}

// EstimateSettledDuration returns the time until the velocity reaches zero.
// The acceleration must be non-zero.
func (t *Tracker) EstimateSettledDuration() time.Duration {
	t.advance()
	ms := -t.velocity / t.acceleration
	return time.Duration(ms * float64(time.Millisecond))
}

// EstimateSettledTime returns the moment the velocity reaches zero. The
// acceleration must be non-zero.
func (t *Tracker) EstimateSettledTime() time.Time {
	d := t.EstimateSettledDuration()
	return t.last.Add(d)
}

// EstimateSettledPosition returns the position at which the velocity reaches
// zero. The acceleration must be non-zero.
func (t *Tracker) EstimateSettledPosition() float64 {
	t.advance()
	d := -t.velocity / t.acceleration
	return t.position + t.velocity*d + t.acceleration*d*d/2
}

// Stop clears velocity and acceleration, leaving the position in place.
func (t *Tracker) Stop() {
	t.advance()
	t.velocity = 0
	t.acceleration = 0
}
