// Package anim drives per-frame animations from a shared frame clock.
//
// All types in this package are confined to the UI goroutine: callbacks are
// registered, removed and dispatched from the same goroutine that receives
// frames, so nothing here takes a lock.
package anim

import "time"

// FrameClock invokes a subscribed callback once per display refresh until
// it is unsubscribed.
type FrameClock interface {
	// Now returns the current time as seen by the clock.
	Now() time.Time
	// Subscribe starts delivering frames to onFrame, replacing any previous
	// subscriber.
	Subscribe(onFrame func(now time.Time))
	// Unsubscribe stops frame delivery. No frame is delivered after it
	// returns.
	Unsubscribe()
}

// Callback receives one call per frame while registered.
type Callback interface {
	OnFrame(now time.Time)
}

// FrameHandler is the registry of active frame callbacks sharing one clock.
// The clock subscription exists exactly while at least one callback is
// registered.
type FrameHandler struct {
	clock      FrameClock
	callbacks  []Callback
	subscribed bool
}

// NewFrameHandler returns a handler that subscribes to clock on demand.
func NewFrameHandler(clock FrameClock) *FrameHandler {
	return &FrameHandler{clock: clock}
}

// Now returns the clock's current time.
func (h *FrameHandler) Now() time.Time {
	return h.clock.Now()
}

// AddCallback registers c. Registering a callback twice has no effect.
func (h *FrameHandler) AddCallback(c Callback) {
	if h.indexOf(c) >= 0 {
		return
	}

	// Copy on write; a dispatch in progress keeps iterating its snapshot.
	callbacks := make([]Callback, len(h.callbacks), len(h.callbacks)+1)
	copy(callbacks, h.callbacks)
	h.callbacks = append(callbacks, c)

	if !h.subscribed {
		h.subscribed = true
		h.clock.Subscribe(h.dispatch)
	}
}

// RemoveCallback unregisters c. Removing an unknown callback has no effect.
// Removing the last callback releases the clock subscription.
func (h *FrameHandler) RemoveCallback(c Callback) {
	index := h.indexOf(c)
	if index < 0 {
		return
	}

	callbacks := make([]Callback, 0, len(h.callbacks)-1)
	callbacks = append(callbacks, h.callbacks[:index]...)
	callbacks = append(callbacks, h.callbacks[index+1:]...)
	h.callbacks = callbacks

	if len(h.callbacks) == 0 {
		h.release()
	}
}

// Has reports whether c is registered.
func (h *FrameHandler) Has(c Callback) bool {
	return h.indexOf(c) >= 0
}

// Len returns the number of registered callbacks.
func (h *FrameHandler) Len() int {
	return len(h.callbacks)
}

func (h *FrameHandler) indexOf(c Callback) int {
	for i, callback := range h.callbacks {
		if callback == c {
			return i
		}
	}
	return -1
}

func (h *FrameHandler) release() {
	if h.subscribed {
		h.subscribed = false
		h.clock.Unsubscribe()
	}
}

func (h *FrameHandler) dispatch(now time.Time) {
	for _, callback := range h.callbacks {
		// Skip callbacks removed by an earlier callback in this frame.
		if h.indexOf(callback) < 0 {
			continue
		}
		callback.OnFrame(now)
	}

	if len(h.callbacks) == 0 {
		h.release()
	}
}
