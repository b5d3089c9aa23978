// Package help draws a one-line summary of key bindings.
package help

import (
	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/columnlayout"
	"github.com/xqrs/columnlayout/keybind"
)

// KeyMap supplies the bindings a Help bar shows.
type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
}

// Help is a primitive drawing "key desc • key desc" for enabled bindings,
// dropping the bindings that do not fit and ending with an ellipsis.
type Help struct {
	*columnlayout.Box
	Styles Styles

	keyMap    KeyMap
	separator string
	ellipsis  string
}

// New returns a help bar without bindings.
func New() *Help {
	return &Help{
		Box:       columnlayout.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  "…",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetSeparator sets the separator between bindings.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	return h
}

// SetStyles sets help styles.
func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	if height <= 0 {
		return
	}
	for _, s := range h.Segments(width) {
		if width <= 0 {
			break
		}
		_, printed := columnlayout.PrintWithStyle(screen, s.Text, x, y, width, columnlayout.AlignmentLeft, s.Style)
		x += printed
		width -= printed
	}
}

// Segment is a styled piece of the help line.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Segments lays out the help line for maxWidth cells. A maxWidth of zero or
// less means unlimited.
func (h *Help) Segments(maxWidth int) []Segment {
	if h.keyMap == nil {
		return nil
	}

	items := make([][]Segment, 0)
	for _, kb := range h.keyMap.ShortHelp() {
		if !kb.Enabled() {
			continue
		}
		if item := h.item(kb); len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	separator := Segment{Text: h.separator, Style: h.Styles.SeparatorStyle}
	out := append([]Segment(nil), items[0]...)
	if maxWidth > 0 && width(out) > maxWidth {
		return nil
	}
	for _, item := range items[1:] {
		candidate := append(append(append([]Segment(nil), out...), separator), item...)
		if maxWidth > 0 && width(candidate) > maxWidth {
			// Only add an ellipsis when it fully fits.
			tail := []Segment{{Text: " " + h.ellipsis, Style: h.Styles.EllipsisStyle}}
			if width(out)+width(tail) <= maxWidth {
				out = append(out, tail...)
			}
			return out
		}
		out = candidate
	}
	return out
}

func (h *Help) item(kb keybind.Keybind) []Segment {
	help := kb.Help()
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return []Segment{{Text: help.Desc, Style: h.Styles.DescStyle}}
	case help.Desc == "":
		return []Segment{{Text: help.Key, Style: h.Styles.KeyStyle}}
	default:
		return []Segment{
			{Text: help.Key, Style: h.Styles.KeyStyle},
			{Text: " " + help.Desc, Style: h.Styles.DescStyle},
		}
	}
}

func width(segments []Segment) int {
	total := 0
	for _, s := range segments {
		total += columnlayout.StringWidth(s.Text)
	}
	return total
}
