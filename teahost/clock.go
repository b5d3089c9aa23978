package teahost

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xqrs/columnlayout/gesture"
)

// frameMsg is one animation frame of subscription gen.
type frameMsg struct {
	gen uint64
}

// timerMsg fires the scheduled call id.
type timerMsg struct {
	id int
}

// timer is a call deferred through a tea.Tick.
type timer struct {
	id    int
	delay time.Duration
	f     func()
	done  bool
}

// Stop implements gesture.Timer.
func (t *timer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Now implements anim.FrameClock.
func (m *Model) Now() time.Time {
	return m.now()
}

// Subscribe implements anim.FrameClock. Frames arrive as messages through
// the program, one frame interval apart.
func (m *Model) Subscribe(onFrame func(now time.Time)) {
	m.frameGen++
	m.onFrame = onFrame
}

// Unsubscribe implements anim.FrameClock. Frame messages already in flight
// are dropped when they arrive.
func (m *Model) Unsubscribe() {
	m.frameGen++
	m.onFrame = nil
}

// AfterFunc implements gesture.Scheduler. f runs inside Update once the
// delay has passed.
func (m *Model) AfterFunc(d time.Duration, f func()) gesture.Timer {
	m.timerSeq++
	t := &timer{id: m.timerSeq, delay: d, f: f}
	m.timers[t.id] = t
	m.scheduled = append(m.scheduled, t)
	return t
}

func (m *Model) frame(msg frameMsg) {
	if msg.gen == m.tickGen {
		m.tickGen = 0
	}
	if msg.gen != m.frameGen || m.onFrame == nil {
		return
	}
	m.onFrame(m.now())
}

func (m *Model) fire(msg timerMsg) {
	t, ok := m.timers[msg.id]
	if !ok {
		return
	}
	delete(m.timers, msg.id)
	if t.Stop() {
		t.f()
	}
}

// commands returns the ticks for the next frame and for newly scheduled
// timers.
func (m *Model) commands() tea.Cmd {
	var cmds []tea.Cmd
	if m.onFrame != nil && m.tickGen != m.frameGen {
		gen := m.frameGen
		m.tickGen = gen
		cmds = append(cmds, tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
			return frameMsg{gen: gen}
		}))
	}
	for _, t := range m.scheduled {
		id := t.id
		cmds = append(cmds, tea.Tick(t.delay, func(time.Time) tea.Msg {
			return timerMsg{id: id}
		}))
	}
	m.scheduled = nil

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
