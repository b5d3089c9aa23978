package columnlayout

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = string(rune('a' + i))
	}
	return strings.Join(lines, "\n")
}

// newTestView returns a view with a 8x3 text area.
func newTestView(text string) *ColumnView {
	v := NewColumnView("col")
	v.SetText(text)
	v.SetRect(0, 0, 12, 5)
	return v
}

func TestColumnView_CanScroll(t *testing.T) {
	v := newTestView(numberedLines(6))

	assert.False(t, v.CanScroll(false, 1), "already at the start")
	assert.True(t, v.CanScroll(false, -1))
	assert.False(t, v.CanScroll(true, -1), "no horizontal scrolling")
	assert.False(t, v.CanScroll(false, 0))

	v.ScrollContent(false, -2)
	assert.Equal(t, 2, v.GetScrollOffset())
	assert.True(t, v.CanScroll(false, 1))

	v.ScrollContent(false, -5)
	assert.Equal(t, 3, v.GetScrollOffset(), "clamped to the last page")
	assert.False(t, v.CanScroll(false, -1))

	v.ScrollContent(true, 3)
	assert.Equal(t, 3, v.GetScrollOffset())
}

func TestColumnView_ShortTextCannotScroll(t *testing.T) {
	v := newTestView("short")

	assert.False(t, v.CanScroll(false, -1))
	assert.False(t, v.CanScroll(false, 1))
}

func TestColumnView_SetTextResetsOffset(t *testing.T) {
	v := newTestView(numberedLines(6))
	v.ScrollTo(2)
	require.Equal(t, 2, v.GetScrollOffset())

	v.SetText(numberedLines(7))
	assert.Zero(t, v.GetScrollOffset())
}

func TestColumnView_Draw(t *testing.T) {
	screen := newTestScreen(t, 12, 5)
	v := newTestView(numberedLines(6))
	v.ScrollTo(3)
	v.Draw(screen)

	assert.Equal(t, "d", cellAt(screen, 2, 1))
	assert.Equal(t, "f", cellAt(screen, 2, 3))
	assert.Equal(t, "col", rowAt(screen, 0, 5, 8))
}

func TestColumnView_WrapsToWidth(t *testing.T) {
	screen := newTestScreen(t, 12, 5)
	v := newTestView("aaaa bbbb cccc")
	v.Draw(screen)

	assert.Equal(t, "aaaa", rowAt(screen, 1, 2, 6))
	assert.Equal(t, "bbbb", rowAt(screen, 2, 2, 6))
	assert.Equal(t, "cccc", rowAt(screen, 3, 2, 6))
}

func TestColumnView_Highlight(t *testing.T) {
	screen := newTestScreen(t, 12, 5)
	v := newTestView("x")

	v.SetHighlight(HighlightHeld)
	v.Draw(screen)
	assert.Equal(t, HighlightHeld, v.GetHighlight())
	assert.Equal(t, BorderSetThick().TopLeft, cellAt(screen, 0, 0))

	v.SetHighlight(HighlightCurrent)
	v.Draw(screen)
	assert.Equal(t, BorderSetRound().TopLeft, cellAt(screen, 0, 0))
	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	assert.Equal(t, Styles.FocusBorderColor, fg)
}

func TestColumnView_InputHandler(t *testing.T) {
	v := newTestView(numberedLines(10))

	assert.Equal(t, ConsumeEventCommand{}, v.InputHandler(key(tcell.KeyPgUp)))

	assert.Equal(t, RedrawCommand{}, v.InputHandler(key(tcell.KeyPgDn)))
	assert.Equal(t, 3, v.GetScrollOffset())

	assert.Equal(t, RedrawCommand{}, v.InputHandler(key(tcell.KeyCtrlE)))
	assert.Equal(t, 4, v.GetScrollOffset())

	assert.Nil(t, v.InputHandler(runeKey('x')))
}

func TestColumnView_MouseWheel(t *testing.T) {
	v := newTestView(numberedLines(10))

	_, cmd := v.MouseHandler(MouseScrollDown, mouseAt(3, 2))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 1, v.GetScrollOffset())

	_, cmd = v.MouseHandler(MouseScrollDown, mouseAt(30, 2))
	assert.Nil(t, cmd)
}
