package columnlayout

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "fits", text: "one two", width: 10, want: []string{"one two"}},
		{name: "breaks at space", text: "one two three", width: 8, want: []string{"one two", "three"}},
		{name: "splits long word", text: "abcdefgh", width: 3, want: []string{"abc", "def", "gh"}},
		{name: "empty", text: "", width: 5, want: []string{""}},
		{name: "no width", text: "abc", width: 0, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordWrap(tt.text, tt.width))
		})
	}
}

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 5, StringWidth("hello"))
	assert.Equal(t, 4, StringWidth("日本"))
}

func TestPrint_Alignment(t *testing.T) {
	screen := newTestScreen(t, 10, 3)

	Print(screen, "ab", 0, 0, 10, AlignmentLeft, tcell.ColorWhite)
	Print(screen, "ab", 0, 1, 10, AlignmentRight, tcell.ColorWhite)
	Print(screen, "ab", 0, 2, 10, AlignmentCenter, tcell.ColorWhite)

	assert.Equal(t, "ab", rowAt(screen, 0, 0, 2))
	assert.Equal(t, "ab", rowAt(screen, 1, 8, 10))
	assert.Equal(t, "ab", rowAt(screen, 2, 4, 6))
}

func TestPrint_Truncates(t *testing.T) {
	screen := newTestScreen(t, 10, 1)

	printed, width := Print(screen, "abcdef", 2, 0, 3, AlignmentLeft, tcell.ColorWhite)

	assert.Equal(t, 3, printed)
	assert.Equal(t, 3, width)
	assert.Equal(t, " abc ", rowAt(screen, 0, 1, 6))
}

func TestPrintWithStyle_KeepsStyle(t *testing.T) {
	screen := newTestScreen(t, 5, 1)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlue)

	PrintWithStyle(screen, "x", 0, 0, 5, AlignmentLeft, style)

	_, _, got, _ := screen.GetContent(0, 0)
	assert.Equal(t, style, got)
}
