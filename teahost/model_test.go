package teahost

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/columnlayout/config"
	"github.com/xqrs/columnlayout/gesture"
	"github.com/xqrs/columnlayout/layout"
)

const frame = 16 * time.Millisecond

type fixture struct {
	now time.Time
	m   *Model
}

func newFixture(t *testing.T, cfg config.Config, width, height int, titles ...string) *fixture {
	t.Helper()
	f := &fixture{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	cards := make([]Card, len(titles))
	for i, title := range titles {
		cards[i] = Card{Title: title, Body: "body of " + title}
	}
	m, err := New(cfg, cards, WithClock(func() time.Time { return f.now }))
	require.NoError(t, err)
	f.m = m
	f.update(tea.WindowSizeMsg{Width: width, Height: height})
	return f
}

func (f *fixture) update(msg tea.Msg) tea.Cmd {
	_, cmd := f.m.Update(msg)
	return cmd
}

// settle delivers frames until the deck stops animating.
func (f *fixture) settle() {
	for i := 0; i < 100 && f.m.onFrame != nil; i++ {
		f.now = f.now.Add(frame)
		f.update(frameMsg{gen: f.m.frameGen})
	}
}

func (f *fixture) titles() []string {
	var titles []string
	for _, card := range f.m.Cards() {
		titles = append(titles, card.Title)
	}
	return titles
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func verticalConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Layout.Orientation = "vertical"
	return cfg
}

func TestModel_AttachesOnFirstWindowSize(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), 40, 11, "a", "b", "c")

	manager := f.m.Manager().(*layout.Horizontal)
	assert.Equal(t, 38.0, manager.ColumnWidth())
	assert.Equal(t, 40.0, manager.ColumnDistance())
	require.Len(t, f.m.placements, 2, "the next column is attached until the first one fills the width")

	pl := f.m.placements[f.m.cards[0]]
	assert.Equal(t, 38, pl.width)
	assert.Equal(t, 10, pl.height, "the last row is kept for help")
	assert.Equal(t, 1.0, pl.x)
	assert.Equal(t, 41.0, f.m.placements[f.m.cards[1]].x)

	f.update(tea.WindowSizeMsg{Width: 80, Height: 11})
	assert.Equal(t, 78.0, manager.ColumnWidth())
}

func TestModel_KeysSettleOnColumns(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), 40, 11, "a", "b", "c")
	manager := f.m.Manager()

	cmd := f.update(runes("l"))
	assert.NotNil(t, cmd, "a frame is requested")
	f.settle()
	assert.InDelta(t, 40, manager.ScrollPosition(), 1e-9)
	assert.Equal(t, 1, manager.CurrentIndex())
	assert.Nil(t, f.m.onFrame)

	f.update(tea.KeyMsg{Type: tea.KeyEnd})
	f.settle()
	assert.InDelta(t, 80, manager.ScrollPosition(), 1e-9)

	f.update(runes("g"))
	f.settle()
	assert.InDelta(t, 0, manager.ScrollPosition(), 1e-9)
}

func TestModel_QuitKey(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), 40, 11, "a")

	cmd := f.update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	assert.Nil(t, f.update(runes("x")))
}

func TestModel_DragAndRelease(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), 40, 11, "a", "b", "c")
	manager := f.m.Manager()

	f.update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 20, 5))
	f.update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 12, 5))
	assert.Equal(t, gesture.StateDragging, f.m.detector.State())
	assert.InDelta(t, 6, manager.ScrollPosition(), 1e-9, "drag starts at the touch slop")

	f.update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, 12, 5))
	assert.Equal(t, gesture.StateIdle, f.m.detector.State())
	f.settle()
	assert.InDelta(t, 0, manager.ScrollPosition(), 1e-9, "a slow short drag snaps back")
}

func TestModel_PressOnHelpLineIsIgnored(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), 40, 11, "a", "b")

	f.update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 20, 10))
	f.update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 10, 10))
	assert.Equal(t, gesture.StateIdle, f.m.detector.State())
	assert.Zero(t, f.m.Manager().ScrollPosition())
}

func TestModel_Wheel(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), 40, 11, "a", "b", "c")
	manager := f.m.Manager()

	f.update(mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 20, 5))
	f.settle()
	assert.InDelta(t, 40, manager.ScrollPosition(), 1e-9)

	f.update(mouse(tea.MouseActionPress, tea.MouseButtonWheelLeft, 20, 5))
	f.settle()
	assert.InDelta(t, 0, manager.ScrollPosition(), 1e-9)
}

func TestModel_VerticalRearrange(t *testing.T) {
	f := newFixture(t, verticalConfig(), 20, 11, "c0", "c1", "c2")
	vertical := f.m.Manager().(*layout.Vertical)

	// Row 4 of the viewport belongs to the third card.
	cmd := f.update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 5, 4))
	assert.NotNil(t, cmd, "the long press timer is scheduled")
	require.Len(t, f.m.timers, 1)

	f.update(timerMsg{id: 1})
	require.Equal(t, gesture.StateRearranging, f.m.detector.State())
	_, held := f.m.highlighted()
	assert.Equal(t, "c2", held.Title)

	f.update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 5, 1))
	assert.Equal(t, []string{"c0", "c2", "c1"}, f.titles())

	f.update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, 5, 1))
	f.settle()
	assert.False(t, vertical.Rearranging())
	_, held = f.m.highlighted()
	assert.Nil(t, held)
}

func TestModel_StoppedTimerDoesNotFire(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), 40, 11, "a")

	fired := false
	timer := f.m.AfterFunc(time.Second, func() { fired = true })
	assert.NotNil(t, f.m.commands())
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	f.update(timerMsg{id: 1})
	assert.False(t, fired)
	assert.Empty(t, f.m.timers)
}

func TestModel_StaleFramesAreDropped(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), 40, 11, "a")

	frames := 0
	f.m.Subscribe(func(time.Time) { frames++ })
	stale := f.m.frameGen
	f.m.Unsubscribe()
	f.m.Subscribe(func(time.Time) { frames++ })

	f.update(frameMsg{gen: stale})
	assert.Zero(t, frames)

	f.update(frameMsg{gen: f.m.frameGen})
	assert.Equal(t, 1, frames)
}

func TestModel_View(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), 40, 11, "alpha", "beta")

	lines := strings.Split(f.m.draw().plain(), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], " ╭─alpha─"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "╮ "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], " │ body of alpha"), lines[1])
	assert.True(t, strings.HasPrefix(lines[9], " ╰─"), lines[9])
	assert.True(t, strings.HasPrefix(lines[10], "left previous • right next"), lines[10])

	assert.NotEmpty(t, f.m.View())
}

func TestModel_EmptyDeck(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), 40, 11)

	f.update(runes("l"))
	assert.Nil(t, f.m.onFrame)
	assert.Empty(t, f.m.placements)
	assert.NotEmpty(t, f.m.View())
}

func TestModel_ConfiguredKeysShareTcellNames(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings = map[string][]string{config.ActionNext: {"PageDown"}}
	f := newFixture(t, cfg, 40, 11, "a", "b")

	f.update(runes("l"))
	assert.Nil(t, f.m.onFrame, "the default keys of next are replaced")

	f.update(tea.KeyMsg{Type: tea.KeyPgDown})
	f.settle()
	assert.Equal(t, 1, f.m.Manager().CurrentIndex())
}
