// Package columnlayout is a terminal widget toolkit built around a paged deck
// of columns that can be flung, snapped and rearranged with the mouse.
package columnlayout

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/xqrs/columnlayout/anim"
	"github.com/xqrs/columnlayout/gesture"
	"github.com/xqrs/columnlayout/internal/logging"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// DefaultFrameInterval is the time between two animation frames.
	DefaultFrameInterval = 16 * time.Millisecond
)

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseMiddleDown
	MouseMiddleUp
	MouseRightDown
	MouseRightUp
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

// queuedUpdate represents the execution of f on the event loop. If done is
// not nil, it receives exactly one element after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application is the top node of an application. It owns the screen and the
// event loop, and doubles as the frame clock and timer source of the
// animations running on it: frames and timers are delivered on the event
// loop, so primitives never need locks.
//
//	if err := columnlayout.NewApplication().SetRoot(p).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	screen tcell.Screen

	// The primitive which currently has the keyboard focus.
	focus Primitive

	// The root primitive to be seen on the screen.
	root Primitive

	events  chan tcell.Event
	updates chan queuedUpdate
	done    chan struct{}

	mouseCapturingPrimitive Primitive        // Receives mouse events until released.
	lastMouseX, lastMouseY  int              // The last position of the mouse.
	lastMouseButtons        tcell.ButtonMask // The last mouse button state.

	// Frame subscription. frameGen increases on every (un)subscription so
	// frames queued for an older subscription are dropped.
	frameInterval time.Duration
	frameGen      uint64
	onFrame       func(time.Time)
	frameStop     chan struct{}

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool

	log zerolog.Logger
}

var (
	_ anim.FrameClock   = (*Application)(nil)
	_ gesture.Scheduler = (*Application)(nil)
)

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		events:        make(chan tcell.Event, updatesQueueSize),
		updates:       make(chan queuedUpdate, updatesQueueSize),
		done:          make(chan struct{}),
		frameInterval: DefaultFrameInterval,
		log:           logging.Component("app"),
	}
}

// SetScreen sets the application's screen. It has no effect once a screen
// is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// SetFrameInterval sets the time between two animation frames.
func (a *Application) SetFrameInterval(interval time.Duration) *Application {
	if interval > 0 {
		a.Lock()
		a.frameInterval = interval
		a.Unlock()
	}
	return a
}

// Run starts the application and thus the event loop. This function returns
// when [Application.Stop] was called.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}
	screen := a.screen
	a.Unlock()

	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()
	defer close(a.done)

	go func() {
		for {
			event := screen.PollEvent()
			select {
			case a.events <- event:
			case <-a.done:
				return
			}
			if event == nil {
				return
			}
		}
	}()

	a.log.Debug().Msg("event loop started")
	a.draw()

	var appErr error
EventLoop:
	for {
		select {
		case event := <-a.events:
			if event == nil {
				break EventLoop
			}

			switch event := event.(type) {
			case *tcell.EventKey:
				a.RLock()
				root := a.root
				a.RUnlock()
				if root != nil && root.HasFocus() {
					if a.executeCommand(root.InputHandler(event)) {
						a.draw()
					}
				}
			case *tcell.EventResize:
				a.Lock()
				a.forceRedraw = true
				a.Unlock()
				a.draw()
			case *tcell.EventMouse:
				if a.fireMouseActions(event) {
					a.draw()
				}
				a.lastMouseButtons = event.Buttons()
			case *tcell.EventError:
				appErr = event
				a.Stop()
			}

		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}

	a.stopFrames()
	a.log.Debug().Msg("event loop stopped")
	return appErr
}

// fireMouseActions derives mouse actions from the event and forwards them to
// the capturing primitive, or the root. It reports whether a redraw is
// needed.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled bool) {
	fire := func(action MouseAction) {
		primitive := a.mouseCapturingPrimitive
		if primitive == nil {
			a.RLock()
			primitive = a.root
			a.RUnlock()
		}
		if primitive == nil {
			return
		}
		capture, cmd := primitive.MouseHandler(action, event)
		if a.executeCommand(cmd) {
			handled = true
		}
		a.mouseCapturingPrimitive = capture
	}

	x, y := event.Position()
	buttons := event.Buttons()
	buttonChanges := buttons ^ a.lastMouseButtons

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX, a.lastMouseY = x, y
	}

	for _, buttonEvent := range []struct {
		button   tcell.ButtonMask
		down, up MouseAction
	}{
		{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp},
		{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp},
		{tcell.ButtonSecondary, MouseRightDown, MouseRightUp},
	} {
		if buttonChanges&buttonEvent.button == 0 {
			continue
		}
		if buttons&buttonEvent.button != 0 {
			fire(buttonEvent.down)
		} else {
			fire(buttonEvent.up)
		}
	}

	for _, wheelEvent := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight},
	} {
		if buttons&wheelEvent.button != 0 {
			fire(wheelEvent.action)
		}
	}

	return handled
}

// Stop stops the application, causing Run() to return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	screen := a.screen
	if screen == nil {
		return
	}
	screen.Fini()
	a.screen = nil
}

// Now implements anim.FrameClock.
func (a *Application) Now() time.Time {
	return time.Now()
}

// Subscribe implements anim.FrameClock. Frames are delivered on the event
// loop every frame interval, and the screen is redrawn after each frame.
func (a *Application) Subscribe(onFrame func(now time.Time)) {
	a.Lock()
	a.stopFramesLocked()
	a.frameGen++
	gen := a.frameGen
	a.onFrame = onFrame
	stop := make(chan struct{})
	a.frameStop = stop
	interval := a.frameInterval
	a.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !a.post(func() { a.frame(gen) }, stop) {
					return
				}
			}
		}
	}()
}

// Unsubscribe implements anim.FrameClock. Frames already queued on the event
// loop are dropped.
func (a *Application) Unsubscribe() {
	a.stopFrames()
}

func (a *Application) stopFrames() {
	a.Lock()
	defer a.Unlock()
	a.stopFramesLocked()
}

func (a *Application) stopFramesLocked() {
	a.frameGen++
	a.onFrame = nil
	if a.frameStop != nil {
		close(a.frameStop)
		a.frameStop = nil
	}
}

func (a *Application) frame(gen uint64) {
	a.RLock()
	onFrame := a.onFrame
	current := a.frameGen == gen
	a.RUnlock()
	if !current || onFrame == nil {
		return
	}
	onFrame(a.Now())
	a.drawIfDirty()
}

// loopTimer is a gesture.Timer whose function runs on the event loop.
type loopTimer struct {
	timer     *time.Timer
	cancelled atomic.Bool
}

// Stop prevents the function from running. It reports whether the call
// stopped the timer before it fired.
func (t *loopTimer) Stop() bool {
	t.cancelled.Store(true)
	return t.timer.Stop()
}

// AfterFunc implements gesture.Scheduler: f runs on the event loop after d
// unless the returned timer is stopped first.
func (a *Application) AfterFunc(d time.Duration, f func()) gesture.Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		a.post(func() {
			if t.cancelled.Load() {
				return
			}
			f()
			a.drawIfDirty()
		}, nil)
	})
	return t
}

// post queues f on the event loop without waiting for it. It returns false
// if the loop or the stop channel closed first.
func (a *Application) post(f func(), stop <-chan struct{}) bool {
	select {
	case a.updates <- queuedUpdate{f: f}:
		return true
	case <-a.done:
		return false
	case <-stop:
		return false
	}
}

// Draw refreshes the screen (during the next update cycle).
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

type dirtyTracker interface {
	IsDirty() bool
	MarkClean()
}

// drawIfDirty redraws only if the root reports pending changes.
func (a *Application) drawIfDirty() {
	a.RLock()
	root := a.root
	a.RUnlock()
	if tracker, ok := root.(dirtyTracker); ok && !tracker.IsDirty() {
		return
	}
	a.draw()
}

// draw actually does what Draw() promises to do.
func (a *Application) draw() *Application {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.Unlock()

	// Maybe we're not ready yet or not anymore.
	if screen == nil || root == nil {
		return a
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)

	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
	if tracker, ok := root.(dirtyTracker); ok {
		tracker.MarkClean()
	}

	a.Lock()
	a.forceRedraw = false
	a.Unlock()

	return a
}

// SetRoot sets the root primitive for this application and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus sets the focus to a new primitive. Blur() is called on the
// previously focused primitive and Focus() on the new one.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}

	return a
}

// GetFocus returns the primitive which has the current focus.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and returns after f has executed.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{})
	select {
	case a.updates <- queuedUpdate{f: f, done: ch}:
	case <-a.done:
		return a
	}
	select {
	case <-ch:
	case <-a.done:
	}
	return a
}

// QueueUpdateDraw works like QueueUpdate() except it refreshes the screen
// immediately after executing f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// QueueEvent sends an event to the Application event loop.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	select {
	case a.events <- event:
	case <-a.done:
	}
	return a
}

func (a *Application) executeCommand(cmd Command) bool {
	if cmd == nil {
		return false
	}

	switch c := cmd.(type) {
	case BatchCommand:
		handled := false
		for _, item := range c {
			if a.executeCommand(item) {
				handled = true
			}
		}
		return handled
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.RLock()
		changed := a.focus != c.Target
		a.RUnlock()
		a.SetFocus(c.Target)
		return changed
	case ConsumeEventCommand:
		return false
	}

	return false
}
