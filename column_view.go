package columnlayout

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Highlight is the emphasis a deck gives one of its columns.
type Highlight int

const (
	HighlightNone Highlight = iota
	// HighlightCurrent marks the column keyboard navigation starts from.
	HighlightCurrent
	// HighlightHeld marks a card picked up for rearranging.
	HighlightHeld
)

// Highlighter is implemented by column content that shows the deck's
// emphasis.
type Highlighter interface {
	SetHighlight(h Highlight)
}

// ColumnView is a bordered column of word-wrapped text whose content
// scrolls vertically.
type ColumnView struct {
	*Box

	text      string
	textStyle tcell.Style
	highlight Highlight

	// Wrapped lines for wrapWidth; nil when stale.
	wrapped   []string
	wrapWidth int

	// Fractional so drags scroll smoothly.
	lineOffset float64
}

var (
	_ Scrollable  = (*ColumnView)(nil)
	_ Highlighter = (*ColumnView)(nil)
)

// NewColumnView returns a bordered column with the given title.
func NewColumnView(title string) *ColumnView {
	v := &ColumnView{
		Box:       NewBox(),
		textStyle: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor),
	}
	v.SetBorders(BordersAll).SetTitle(title)
	v.SetBorderPadding(0, 0, 1, 1)
	return v
}

// SetText replaces the column's text and scrolls back to its start.
func (v *ColumnView) SetText(text string) *ColumnView {
	text = strings.ReplaceAll(text, "\t", "    ")
	if v.text != text {
		v.text = text
		v.wrapped = nil
		v.lineOffset = 0
		v.MarkDirty()
	}
	return v
}

// GetText returns the column's text.
func (v *ColumnView) GetText() string {
	return v.text
}

// SetHighlight implements Highlighter.
func (v *ColumnView) SetHighlight(h Highlight) {
	if v.highlight == h {
		return
	}
	v.highlight = h
	switch h {
	case HighlightHeld:
		v.SetBorderSet(BorderSetThick()).SetBorderColor(Styles.HeldBorderColor)
	case HighlightCurrent:
		v.SetBorderSet(BorderSetRound()).SetBorderColor(Styles.FocusBorderColor)
	default:
		v.SetBorderSet(BorderSetRound()).SetBorderColor(Styles.BorderColor)
	}
}

// GetHighlight returns the current emphasis.
func (v *ColumnView) GetHighlight() Highlight {
	return v.highlight
}

// lines returns the text wrapped to the current inner width.
func (v *ColumnView) lines() []string {
	_, _, width, _ := v.GetInnerRect()
	if v.wrapped == nil || v.wrapWidth != width {
		v.wrapWidth = width
		v.wrapped = v.wrapped[:0]
		for _, paragraph := range strings.Split(v.text, "\n") {
			v.wrapped = append(v.wrapped, WordWrap(paragraph, width)...)
		}
	}
	return v.wrapped
}

func (v *ColumnView) maxOffset() float64 {
	_, _, _, height := v.GetInnerRect()
	return math.Max(float64(len(v.lines())-height), 0)
}

// GetScrollOffset returns the number of wrapped lines skipped at the top.
func (v *ColumnView) GetScrollOffset() int {
	return int(v.lineOffset)
}

// ScrollTo scrolls so that row is the first visible line.
func (v *ColumnView) ScrollTo(row int) *ColumnView {
	offset := math.Min(math.Max(float64(row), 0), v.maxOffset())
	if offset != v.lineOffset {
		v.lineOffset = offset
		v.MarkDirty()
	}
	return v
}

// CanScroll implements Scrollable. Only vertical scrolling is supported.
func (v *ColumnView) CanScroll(horizontal bool, delta float64) bool {
	switch {
	case horizontal || delta == 0:
		return false
	case delta > 0:
		return v.lineOffset > 0
	default:
		return v.lineOffset < v.maxOffset()
	}
}

// ScrollContent implements Scrollable.
func (v *ColumnView) ScrollContent(horizontal bool, delta float64) {
	if horizontal {
		return
	}
	offset := math.Min(math.Max(v.lineOffset-delta, 0), v.maxOffset())
	if int(offset) != int(v.lineOffset) {
		v.MarkDirty()
	}
	v.lineOffset = offset
}

// Draw draws this primitive onto the screen.
func (v *ColumnView) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)

	x, y, width, height := v.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	lines := v.lines()
	v.lineOffset = math.Min(v.lineOffset, v.maxOffset())
	first := int(v.lineOffset)
	for row := 0; row < height && first+row < len(lines); row++ {
		PrintWithStyle(screen, lines[first+row], x, y+row, width, AlignmentLeft, v.textStyle)
	}
}

// InputHandler scrolls the text.
func (v *ColumnView) InputHandler(event *tcell.EventKey) Command {
	_, _, _, pageSize := v.GetInnerRect()
	row := v.GetScrollOffset()
	switch event.Key() {
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		row += pageSize
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		row -= pageSize
	case tcell.KeyCtrlE:
		row++
	case tcell.KeyCtrlY:
		row--
	default:
		return nil
	}
	before := v.lineOffset
	if v.ScrollTo(row); v.lineOffset == before {
		return ConsumeEventCommand{}
	}
	return RedrawCommand{}
}

// MouseHandler scrolls the text with the wheel.
func (v *ColumnView) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !v.InRect(event.Position()) {
		return nil, nil
	}
	switch action {
	case MouseScrollUp:
		v.ScrollTo(v.GetScrollOffset() - 1)
	case MouseScrollDown:
		v.ScrollTo(v.GetScrollOffset() + 1)
	default:
		return nil, nil
	}
	return nil, RedrawCommand{}
}
