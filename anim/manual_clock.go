package anim

import "time"

// ManualFrameClock is a FrameClock that only produces frames when ticked.
type ManualFrameClock struct {
	now     time.Time
	onFrame func(time.Time)

	// Frames counts frames delivered to a subscriber.
	Frames int
	// Subscriptions counts calls to Subscribe.
	Subscriptions int
}

// NewManualFrameClock returns a clock set to start.
func NewManualFrameClock(start time.Time) *ManualFrameClock {
	return &ManualFrameClock{now: start}
}

// Now implements FrameClock.
func (c *ManualFrameClock) Now() time.Time {
	return c.now
}

// Subscribe implements FrameClock.
func (c *ManualFrameClock) Subscribe(onFrame func(time.Time)) {
	c.Subscriptions++
	c.onFrame = onFrame
}

// Unsubscribe implements FrameClock.
func (c *ManualFrameClock) Unsubscribe() {
	c.onFrame = nil
}

// Subscribed reports whether a subscriber is registered.
func (c *ManualFrameClock) Subscribed() bool {
	return c.onFrame != nil
}

// Advance moves the clock forward by d without producing a frame.
func (c *ManualFrameClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Tick moves the clock forward by d and delivers one frame if subscribed.
func (c *ManualFrameClock) Tick(d time.Duration) {
	c.now = c.now.Add(d)
	if c.onFrame == nil {
		return
	}
	c.Frames++
	c.onFrame(c.now)
}

// Run ticks n frames of d each.
func (c *ManualFrameClock) Run(n int, d time.Duration) {
	for i := 0; i < n; i++ {
		c.Tick(d)
	}
}
