package columnlayout

import "github.com/gdamore/tcell/v2"

// ScrollLengths bundles content and viewport lengths in cells.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

// subcell is the number of thumb positions per cell.
const subcell = 8

// GlyphSet defines the track and fractional thumb glyphs of a scroll bar.
type GlyphSet struct {
	Track string

	// ThumbStart[i] covers i+1 eighths of a cell starting at its left (or
	// top) edge; ThumbEnd[i] covers i+1 eighths ending at its right (or
	// bottom) edge.
	ThumbStart [8]string
	ThumbEnd   [8]string
}

// HorizontalGlyphSet returns block glyphs for a scroll bar laid along a row.
func HorizontalGlyphSet() GlyphSet {
	return GlyphSet{
		Track: BoxDrawingsLightHorizontal,
		ThumbStart: [8]string{
			BlockLeftOneEighth, BlockLeftOneQuarter, BlockLeftThreeEighths, BlockLeftHalf,
			BlockLeftFiveEighths, BlockLeftThreeQuarters, BlockLeftSevenEighths, BlockFull,
		},
		// Unicode has no right blocks between one eighth and one half.
		ThumbEnd: [8]string{
			BlockRightOneEighth, BlockRightOneEighth, BlockRightHalf, BlockRightHalf,
			BlockRightHalf, BlockRightHalf, BlockFull, BlockFull,
		},
	}
}

// VerticalGlyphSet returns block glyphs for a scroll bar laid along a column.
func VerticalGlyphSet() GlyphSet {
	return GlyphSet{
		Track: BoxDrawingsLightVertical,
		ThumbStart: [8]string{
			BlockUpperOneEighth, BlockUpperOneEighth, BlockUpperHalf, BlockUpperHalf,
			BlockUpperHalf, BlockUpperHalf, BlockFull, BlockFull,
		},
		ThumbEnd: [8]string{
			BlockLowerOneEighth, BlockLowerOneQuarter, BlockLowerThreeEighths, BlockLowerHalf,
			BlockLowerFiveEighths, BlockLowerThreeQuarters, BlockLowerSevenEighths, BlockFull,
		},
	}
}

// ScrollBar renders the position of a viewport within its content as a
// proportional thumb on a one-cell track.
type ScrollBar struct {
	*Box

	horizontal  bool
	autoHide    bool
	contentLen  int
	viewportLen int
	offset      int

	trackStyle tcell.Style
	thumbStyle tcell.Style
	glyphSet   GlyphSet
}

// NewScrollBar returns a scroll bar laid along a column, or along a row if
// horizontal is set.
func NewScrollBar(horizontal bool) *ScrollBar {
	glyphs := VerticalGlyphSet()
	if horizontal {
		glyphs = HorizontalGlyphSet()
	}
	return &ScrollBar{
		Box:        NewBox(),
		horizontal: horizontal,
		autoHide:   true,
		trackStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.GraphicsColor).Background(Styles.PrimitiveBackgroundColor),
		glyphSet:   glyphs,
	}
}

// SetLengths sets content and viewport lengths.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	contentLen, viewportLen := max(lengths.ContentLen, 0), max(lengths.ViewportLen, 0)
	if s.contentLen != contentLen || s.viewportLen != viewportLen {
		s.contentLen, s.viewportLen = contentLen, viewportLen
		s.MarkDirty()
	}
	return s
}

// SetOffset sets the viewport's offset into the content.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	if offset = max(offset, 0); s.offset != offset {
		s.offset = offset
		s.MarkDirty()
	}
	return s
}

// SetAutoHide controls whether the bar is hidden when there is nothing to
// scroll.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// computeScrollMetrics computes the thumb geometry in subcell units.
func computeScrollMetrics(trackCells, contentLen, viewportLen, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * offset) / maxOffset
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

// cellFill returns the part of cell cellIndex covered by the thumb, as a
// cell-local start and length in subcells.
func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellStart+subcell)
	if end <= start {
		return 0, 0
	}
	return start - cellStart, end - start
}

func (s *ScrollBar) glyph(start, fillLen int) (string, tcell.Style) {
	switch {
	case fillLen <= 0:
		return s.glyphSet.Track, s.trackStyle
	case fillLen >= subcell:
		return BlockFull, s.thumbStyle
	case start == 0:
		return s.glyphSet.ThumbStart[fillLen-1], s.thumbStyle
	default:
		return s.glyphSet.ThumbEnd[fillLen-1], s.thumbStyle
	}
}

// Draw draws the scroll bar along the first row (or column) of its inner
// rect.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	x, y, width, height := s.GetInnerRect()
	length := height
	if s.horizontal {
		length = width
	}
	if length <= 0 || s.contentLen <= 0 {
		return
	}
	if s.autoHide && s.contentLen <= s.viewportLen {
		return
	}

	m := computeScrollMetrics(length, s.contentLen, s.viewportLen, s.offset)
	for cell := 0; cell < m.trackCells; cell++ {
		glyph, style := s.glyph(cellFill(m, cell))
		if s.horizontal {
			setCell(screen, x+cell, y, glyph, style)
		} else {
			setCell(screen, x, y+cell, glyph, style)
		}
	}
}

var _ Primitive = &ScrollBar{}
