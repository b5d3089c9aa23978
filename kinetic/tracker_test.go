package kinetic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTracker_ConstantVelocity(t *testing.T) {
	clock := NewManualClock(epoch)
	tr := NewTracker(clock, 0)
	tr.SetPosition(10)
	tr.SetVelocity(0.5)

	clock.Advance(120 * time.Millisecond)

	assert.InDelta(t, 10+0.5*120, tr.Position(), 1e-9)
	assert.InDelta(t, 0.5, tr.Velocity(), 1e-12)
}

func TestTracker_ConstantAcceleration(t *testing.T) {
	clock := NewManualClock(epoch)
	tr := NewTracker(clock, -0.001)
	tr.SetVelocity(1)

	clock.Advance(100 * time.Millisecond)

	// p = v·t + a·t²/2, v = v0 + a·t
	assert.InDelta(t, 100-0.001*100*100/2, tr.Position(), 1e-9)
	assert.InDelta(t, 1-0.1, tr.Velocity(), 1e-12)
}

func TestTracker_LazyAdvanceIsContinuous(t *testing.T) {
	clock := NewManualClock(epoch)
	a := NewTracker(clock, 0.002)
	b := NewTracker(clock, 0.002)
	a.SetVelocity(0.3)
	b.SetVelocity(0.3)

	// Reading a in small steps must land where b lands in one step.
	for i := 0; i < 10; i++ {
		clock.Advance(7 * time.Millisecond)
		_ = a.Position()
	}

	assert.InDelta(t, b.Position(), a.Position(), 1e-9)
	assert.InDelta(t, b.Velocity(), a.Velocity(), 1e-12)
}

func TestTracker_SetAccelerationKeepsPosition(t *testing.T) {
	clock := NewManualClock(epoch)
	tr := NewTracker(clock, 0)
	tr.SetVelocity(1)
	clock.Advance(50 * time.Millisecond)

	tr.SetAcceleration(-0.01)
	assert.InDelta(t, 50, tr.Position(), 1e-9)
	assert.InDelta(t, -0.01, tr.Acceleration(), 1e-12)
}

func TestTracker_SetVelocityFromPosition(t *testing.T) {
	clock := NewManualClock(epoch)
	tr := NewTracker(clock, 0)

	clock.Advance(10 * time.Millisecond)
	tr.SetVelocityFromPosition(20)
	assert.InDelta(t, 2, tr.Velocity(), 1e-12, "first sample is taken as-is")

	clock.Advance(10 * time.Millisecond)
	tr.SetVelocityFromPosition(60)
	assert.InDelta(t, 3, tr.velocity, 1e-12, "second sample is averaged with the first")
}

func TestTracker_SetVelocityFromPositionWithoutElapsedTime(t *testing.T) {
	clock := NewManualClock(epoch)
	tr := NewTracker(clock, 0)
	tr.SetVelocity(1.5)

	tr.SetVelocityFromPosition(42)

	assert.InDelta(t, 1.5, tr.velocity, 1e-12)
	assert.InDelta(t, 42, tr.position, 1e-12)
}

func TestTracker_EstimateSettled(t *testing.T) {
	clock := NewManualClock(epoch)
	tr := NewTracker(clock, -1.0/1024)
	tr.SetVelocity(0.5)

	// t = 0.5·1024 = 512ms, p = 0.5·512 − 512²/2048 = 128
	assert.Equal(t, 512*time.Millisecond, tr.EstimateSettledDuration())
	assert.Equal(t, epoch.Add(512*time.Millisecond), tr.EstimateSettledTime())
	assert.InDelta(t, 128, tr.EstimateSettledPosition(), 1e-9)

	clock.Advance(512 * time.Millisecond)
	assert.InDelta(t, 128, tr.Position(), 1e-9)
	assert.InDelta(t, 0, tr.Velocity(), 1e-12)
}

func TestTracker_SetAccelerationForTarget(t *testing.T) {
	clock := NewManualClock(epoch)
	tr := NewTracker(clock, 0)
	tr.SetPosition(10)
	tr.SetVelocity(-0.4)

	tr.SetAccelerationForTarget(-30)

	require.Greater(t, tr.Acceleration(), 0.0)
	assert.InDelta(t, -30, tr.EstimateSettledPosition(), 1e-9)

	clock.Set(tr.EstimateSettledTime())
	assert.InDelta(t, -30, tr.Position(), 1e-6)
}

func TestTracker_SetAccelerationForCurrentPosition(t *testing.T) {
	clock := NewManualClock(epoch)
	tr := NewTracker(clock, 0.1)
	tr.SetPosition(5)
	tr.SetVelocity(3)
	tr.SetAccelerationForTarget(tr.Position())

	assert.Zero(t, tr.Velocity())
	assert.Zero(t, tr.Acceleration())
}
