package columnlayout

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Alignment is the horizontal alignment of printed text.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the given box at (x,y,maxWidth,1),
// not exceeding that box. The screen's background color will not be changed.
//
// Returns the number of actual bytes of the text printed and the actual width
// used for the printed runes.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
	return end - start, width
}

// PrintWithStyle works like [Print] but takes a full style, background
// included.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, style, false)
	return end - start, width
}

// PrintSimple prints white text to the screen at the given position.
func PrintSimple(screen tcell.Screen, text string, x, y int) {
	Print(screen, text, x, y, math.MaxInt32, AlignmentLeft, Styles.PrimaryTextColor)
}

// printWithStyle prints text skipping the first skipWidth cells. It returns
// the start index, end index (exclusively), and screen width of the text
// actually printed. If maintainBackground is set, the style's background is
// replaced by whatever is already on screen.
func printWithStyle(screen tcell.Screen, text string, x, y, skipWidth, maxWidth int, alignment Alignment, style tcell.Style, maintainBackground bool) (start, end, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0, 0
	}

	// Skip beginning and measure width.
	var textWidth int
	state := &stepState{unisegState: -1}
	skipped := *state
	str := text
	for len(str) > 0 {
		_, str, state = step(str, state)
		if skipWidth > 0 {
			skipWidth -= state.Width()
			text = str
			skipped = *state
			start += state.GrossLength()
		} else {
			textWidth += state.Width()
		}
	}
	state = &skipped

	// Reduce all alignments to AlignmentLeft.
	switch alignment {
	case AlignmentRight:
		for len(text) > 0 && textWidth > maxWidth {
			_, text, state = step(text, state)
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		subtracted := (textWidth - maxWidth) / 2
		for len(text) > 0 && subtracted > 0 {
			_, text, state = step(text, state)
			subtracted -= state.Width()
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	end = start
	rightBorder := x + maxWidth
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		var cluster string
		cluster, text, state = step(text, state)
		if cluster == "" {
			break
		}
		width := state.Width()
		if x+width > rightBorder {
			break
		}

		if width > 0 {
			cellStyle := style
			if maintainBackground {
				_, _, existing, _ := screen.GetContent(x, y)
				_, background, _ := existing.Decompose()
				cellStyle = cellStyle.Background(background)
			}
			setCell(screen, x, y, cluster, cellStyle)
			// Wide clusters occupy the following cells too.
			for offset := 1; offset < width; offset++ {
				screen.SetContent(x+offset, y, ' ', nil, cellStyle)
			}
		}

		x += width
		end += state.GrossLength()
		printedWidth += width
	}

	return
}

// setCell puts one grapheme cluster at x, y.
func setCell(screen tcell.Screen, x, y int, cluster string, style tcell.Style) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return
	}
	screen.SetContent(x, y, runes[0], runes[1:], style)
}

// fill paints the rectangle with spaces in style.
func fill(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
