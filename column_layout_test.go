package columnlayout

import (
	"fmt"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/columnlayout/anim"
	"github.com/xqrs/columnlayout/gesture"
	"github.com/xqrs/columnlayout/layout"
)

const frame = 16 * time.Millisecond

type deckFixture struct {
	clock   *anim.ManualFrameClock
	handler *anim.FrameHandler
	deck    *ColumnLayout
	adapter *SliceAdapter
	views   []*ColumnView
}

func newFixtureClock() (*anim.ManualFrameClock, *anim.FrameHandler) {
	clock := anim.NewManualFrameClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return clock, anim.NewFrameHandler(clock)
}

func newDeck(t *testing.T, manager layout.Manager, clock *anim.ManualFrameClock, handler *anim.FrameHandler, texts ...string) *deckFixture {
	t.Helper()
	policy, err := gesture.NewPolicy(gesture.PolicyConfig{Kind: gesture.PolicyPaging}, manager, handler)
	require.NoError(t, err)

	f := &deckFixture{clock: clock, handler: handler}
	items := make([]Primitive, len(texts))
	for i, text := range texts {
		v := NewColumnView(fmt.Sprintf("c%d", i)).SetText(text)
		f.views = append(f.views, v)
		items[i] = v
	}
	f.adapter = NewSliceAdapter(items...)
	f.deck = NewColumnLayout(manager, policy, gesture.Config{})
	f.deck.SetAdapter(f.adapter)
	return f
}

// newHorizontalDeck shows two 18-cell columns with a one-cell margin in a
// 40x10 viewport, so columns are 20 cells apart.
func newHorizontalDeck(t *testing.T, texts ...string) *deckFixture {
	t.Helper()
	clock, handler := newFixtureClock()
	f := newDeck(t, layout.NewHorizontal(2, 1), clock, handler, texts...)
	f.deck.SetRect(0, 0, 42, 12)
	return f
}

func (f *deckFixture) titles() []string {
	var titles []string
	for _, p := range f.deck.Attached() {
		titles = append(titles, p.(*ColumnView).GetTitle())
	}
	return titles
}

func (f *deckFixture) order() []string {
	var titles []string
	for _, p := range f.adapter.Items() {
		titles = append(titles, p.(*ColumnView).GetTitle())
	}
	return titles
}

func (f *deckFixture) settle() {
	f.clock.Run(100, frame)
}

func repeat(n int, text string) []string {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = text
	}
	return texts
}

func TestColumnLayout_PlacesVisibleColumns(t *testing.T) {
	f := newHorizontalDeck(t, repeat(4, "text")...)
	screen := newTestScreen(t, 42, 12)
	f.deck.Draw(screen)

	assert.Equal(t, []string{"c0", "c1", "c2"}, f.titles())

	x, y, width, height := f.views[0].GetRect()
	assert.Equal(t, []int{2, 1, 18, 10}, []int{x, y, width, height})
	x, _, _, _ = f.views[1].GetRect()
	assert.Equal(t, 22, x)

	// The third column starts past the right edge and is clipped away.
	assert.Equal(t, BoxDrawingsLightVertical, cellAt(screen, 41, 5))
}

func TestColumnLayout_RelayoutOnResize(t *testing.T) {
	f := newHorizontalDeck(t, repeat(4, "text")...)

	f.deck.SetRect(0, 0, 82, 12)

	manager := f.deck.Manager().(*layout.Horizontal)
	assert.Equal(t, 38.0, manager.ColumnWidth())
}

func TestColumnLayout_KeysSettleOnColumns(t *testing.T) {
	f := newHorizontalDeck(t, repeat(4, "text")...)
	manager := f.deck.Manager()

	assert.Equal(t, RedrawCommand{}, f.deck.InputHandler(runeKey('l')))
	assert.True(t, f.deck.Policy().Settling())
	f.settle()
	assert.InDelta(t, 20, manager.ScrollPosition(), 1e-9)
	assert.Equal(t, 1, manager.CurrentIndex())
	assert.Equal(t, []string{"c1", "c2", "c3"}, f.titles())

	f.deck.InputHandler(runeKey('G'))
	f.settle()
	assert.InDelta(t, 60, manager.ScrollPosition(), 1e-9)
	assert.Equal(t, 3, manager.CurrentIndex())

	f.deck.InputHandler(key(tcell.KeyRight))
	f.settle()
	assert.InDelta(t, 60, manager.ScrollPosition(), 1e-9, "clamped to the last column")

	f.deck.InputHandler(runeKey('g'))
	f.settle()
	assert.InDelta(t, 0, manager.ScrollPosition(), 1e-9)
}

func TestColumnLayout_RepeatedKeysAccumulate(t *testing.T) {
	f := newHorizontalDeck(t, repeat(4, "text")...)

	f.deck.InputHandler(runeKey('l'))
	f.clock.Tick(frame)
	f.deck.InputHandler(runeKey('l'))
	f.settle()

	assert.InDelta(t, 40, f.deck.Manager().ScrollPosition(), 1e-9)
}

func TestColumnLayout_QuitAndForwardedKeys(t *testing.T) {
	f := newHorizontalDeck(t, repeat(2, numberedLines(20))...)
	screen := newTestScreen(t, 42, 12)
	f.deck.Draw(screen)

	assert.Equal(t, QuitCommand{}, f.deck.InputHandler(runeKey('q')))

	assert.Equal(t, RedrawCommand{}, f.deck.InputHandler(key(tcell.KeyPgDn)))
	assert.Equal(t, 8, f.views[0].GetScrollOffset())
	assert.Zero(t, f.views[1].GetScrollOffset())
}

func TestColumnLayout_DragAndRelease(t *testing.T) {
	f := newHorizontalDeck(t, repeat(4, "text")...)
	screen := newTestScreen(t, 42, 12)
	f.deck.Draw(screen)
	manager := f.deck.Manager()

	capture, cmd := f.deck.MouseHandler(MouseLeftDown, mouseAt(10, 5))
	assert.Same(t, f.deck, capture)
	assert.Equal(t, BatchCommand{SetFocusCommand{Target: f.deck}, RedrawCommand{}}, cmd)

	capture, _ = f.deck.MouseHandler(MouseMove, mouseAt(4, 5))
	assert.Same(t, f.deck, capture)
	assert.Equal(t, gesture.StateDragging, f.deck.Detector().State())
	assert.InDelta(t, 4, manager.ScrollPosition(), 1e-9, "drag starts at the touch slop")
	assert.True(t, f.deck.exclusive)

	capture, _ = f.deck.MouseHandler(MouseLeftUp, mouseAt(4, 5))
	assert.Nil(t, capture)
	assert.False(t, f.deck.exclusive)

	f.settle()
	assert.InDelta(t, 0, manager.ScrollPosition(), 1e-9, "a slow short drag snaps back")
}

func TestColumnLayout_CrossAxisDragScrollsColumn(t *testing.T) {
	f := newHorizontalDeck(t, repeat(2, numberedLines(20))...)
	screen := newTestScreen(t, 42, 12)
	f.deck.Draw(screen)

	f.deck.MouseHandler(MouseLeftDown, mouseAt(10, 6))
	f.deck.MouseHandler(MouseMove, mouseAt(10, 2))
	assert.Equal(t, gesture.StateUnableToDrag, f.deck.Detector().State())
	assert.Equal(t, 4, f.views[0].GetScrollOffset())

	f.deck.MouseHandler(MouseMove, mouseAt(10, 3))
	assert.Equal(t, 3, f.views[0].GetScrollOffset())
	f.deck.MouseHandler(MouseLeftUp, mouseAt(10, 3))

	assert.Zero(t, f.deck.Manager().ScrollPosition())
}

func TestColumnLayout_Wheel(t *testing.T) {
	f := newHorizontalDeck(t, numberedLines(20), "short", "short")
	screen := newTestScreen(t, 42, 12)
	f.deck.Draw(screen)
	manager := f.deck.Manager()

	_, cmd := f.deck.MouseHandler(MouseScrollDown, mouseAt(10, 5))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 1, f.views[0].GetScrollOffset(), "the column scrolls first")
	assert.False(t, f.deck.Policy().Settling())

	f.deck.MouseHandler(MouseScrollDown, mouseAt(30, 5))
	f.settle()
	assert.InDelta(t, 20, manager.ScrollPosition(), 1e-9)

	f.deck.MouseHandler(MouseScrollLeft, mouseAt(30, 5))
	f.settle()
	assert.InDelta(t, 0, manager.ScrollPosition(), 1e-9)
}

func TestColumnLayout_HighlightsCurrentColumnWhenFocused(t *testing.T) {
	f := newHorizontalDeck(t, repeat(3, "text")...)
	screen := newTestScreen(t, 42, 12)

	f.deck.Draw(screen)
	assert.Equal(t, HighlightNone, f.views[0].GetHighlight())

	f.deck.Focus(func(Primitive) {})
	f.deck.Draw(screen)
	assert.Equal(t, HighlightCurrent, f.views[0].GetHighlight())
	assert.Equal(t, HighlightNone, f.views[1].GetHighlight())
}

func TestColumnLayout_ScrollBarTracksPosition(t *testing.T) {
	f := newHorizontalDeck(t, repeat(4, "text")...)
	screen := newTestScreen(t, 42, 12)

	f.deck.Draw(screen)
	assert.Equal(t, BlockFull, cellAt(screen, 1, 11))

	f.deck.InputHandler(runeKey('G'))
	f.settle()
	f.deck.Draw(screen)
	assert.Equal(t, BlockFull, cellAt(screen, 40, 11))
	assert.Equal(t, BoxDrawingsLightHorizontal, cellAt(screen, 1, 11))
}

func TestColumnLayout_DirtyTracksColumns(t *testing.T) {
	f := newHorizontalDeck(t, repeat(3, "text")...)
	screen := newTestScreen(t, 42, 12)
	f.deck.Draw(screen)
	f.deck.MarkClean()
	require.False(t, f.deck.IsDirty())

	f.views[0].SetText("changed")
	assert.True(t, f.deck.IsDirty())
}

type fakeTimer struct {
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasPending := !t.stopped
	t.stopped = true
	return wasPending
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(_ time.Duration, f func()) gesture.Timer {
	timer := &fakeTimer{f: f}
	s.timers = append(s.timers, timer)
	return timer
}

func (s *fakeScheduler) fire() {
	timers := s.timers
	s.timers = nil
	for _, timer := range timers {
		if !timer.stopped {
			timer.stopped = true
			timer.f()
		}
	}
}

func TestColumnLayout_VerticalRearrange(t *testing.T) {
	clock, handler := newFixtureClock()
	f := newDeck(t, layout.NewVertical(handler, layout.RearrangeConfig{}), clock, handler, repeat(3, "text")...)
	scheduler := &fakeScheduler{}
	f.deck.SetScheduler(scheduler)
	f.deck.SetRect(0, 0, 22, 12)
	screen := newTestScreen(t, 22, 12)
	f.deck.Draw(screen)

	var swaps [][2]int
	f.adapter.SetReorderedFunc(func(oldIndex, newIndex int) {
		swaps = append(swaps, [2]int{oldIndex, newIndex})
	})

	// Row 4 of the viewport belongs to the third card.
	f.deck.MouseHandler(MouseLeftDown, mouseAt(5, 5))
	scheduler.fire()
	require.Equal(t, gesture.StateRearranging, f.deck.Detector().State())
	f.deck.Draw(screen)
	assert.Equal(t, HighlightHeld, f.views[2].GetHighlight())

	f.deck.MouseHandler(MouseMove, mouseAt(5, 2))
	assert.Equal(t, []string{"c0", "c2", "c1"}, f.order())
	assert.Equal(t, [][2]int{{2, 1}}, swaps)

	f.deck.MouseHandler(MouseLeftUp, mouseAt(5, 2))
	f.settle()
	vertical := f.deck.Manager().(*layout.Vertical)
	assert.False(t, vertical.Rearranging())

	f.deck.Draw(screen)
	assert.Equal(t, HighlightNone, f.views[2].GetHighlight())
}

func TestSliceAdapter(t *testing.T) {
	a, b, c := NewBox(), NewBox(), NewBox()
	adapter := NewSliceAdapter(a, b, c)

	var got [2]int
	adapter.SetReorderedFunc(func(oldIndex, newIndex int) { got = [2]int{oldIndex, newIndex} })
	adapter.OnRearranged(0, 1)

	assert.Equal(t, 3, adapter.ItemCount())
	assert.Equal(t, [2]int{0, 1}, got)
	assert.Equal(t, 0, adapter.IndexOf(b))
	assert.Equal(t, 1, adapter.IndexOf(a))
	assert.Equal(t, -1, adapter.IndexOf(NewBox()))
	assert.Same(t, c, adapter.ContentAt(2))
}
