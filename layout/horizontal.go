package layout

import (
	"github.com/rs/zerolog"

	"github.com/xqrs/columnlayout/internal/logging"
)

// Horizontal pages columns side by side. A column is
// viewportWidth/visibleColumns − 2·margin cells wide and each column keeps
// margin cells free on both sides.
type Horizontal struct {
	binding

	adapter        Adapter
	visibleColumns int
	margin         float64

	state       ScrollState
	columnWidth float64
	height      int
	window      *Window

	log zerolog.Logger
}

var _ Manager = (*Horizontal)(nil)

// NewHorizontal returns an unattached manager showing visibleColumns columns
// at once.
func NewHorizontal(visibleColumns, margin int) *Horizontal {
	if visibleColumns < 1 {
		visibleColumns = 1
	}
	if margin < 0 {
		margin = 0
	}
	log := logging.Component("layout.horizontal")
	return &Horizontal{
		visibleColumns: visibleColumns,
		margin:         float64(margin),
		window:         newWindow(log),
		log:            log,
	}
}

// Attach implements Manager.
func (m *Horizontal) Attach(host Host, adapter Adapter) {
	m.bind(host)
	m.adapter = adapter
	m.window.Reset()
	m.window.bind(host, adapter)
	m.Relayout()
}

// Detach implements Manager.
func (m *Horizontal) Detach() {
	m.window.Reset()
	m.window.bind(nil, nil)
	m.unbind()
	m.adapter = nil
}

// Relayout implements Manager.
func (m *Horizontal) Relayout() {
	if m.host == nil {
		return
	}

	width, height := m.host.Size()
	m.height = height
	m.columnWidth = float64(width/m.visibleColumns) - 2*m.margin
	if m.columnWidth < 0 {
		m.columnWidth = 0
	}
	m.state.Clamp(itemCount(m.adapter))

	m.window.Reset()
	m.apply()
}

// VisibleColumns returns the number of columns shown at once.
func (m *Horizontal) VisibleColumns() int {
	return m.visibleColumns
}

// Margin returns the space kept free on each side of a column.
func (m *Horizontal) Margin() float64 {
	return m.margin
}

// ColumnWidth returns the width of one column.
func (m *Horizontal) ColumnWidth() float64 {
	return m.columnWidth
}

// State returns the current scroll state.
func (m *Horizontal) State() ScrollState {
	return m.state
}

// ScrollBy implements Manager.
func (m *Horizontal) ScrollBy(delta float64) {
	if m.host == nil || delta == 0 {
		return
	}
	prev := m.state.CurrentIndex
	m.state.ApplyDelta(delta, m.columnWidth, m.margin)
	if m.state.CurrentIndex != prev {
		m.log.Debug().Int("index", m.state.CurrentIndex).Msg("current index")
	}
	m.apply()
}

// ScrollPosition implements Manager.
func (m *Horizontal) ScrollPosition() float64 {
	return m.state.ScrollPosition(m.columnWidth, m.margin)
}

// ColumnDistance implements Manager.
func (m *Horizontal) ColumnDistance() float64 {
	return ColumnDistance(m.columnWidth, m.margin)
}

// CurrentIndex implements Manager.
func (m *Horizontal) CurrentIndex() int {
	return m.state.CurrentIndex
}

// ColumnCount implements Manager.
func (m *Horizontal) ColumnCount() int {
	return itemCount(m.adapter)
}

// Orientation implements Manager.
func (m *Horizontal) Orientation() Orientation {
	return OrientationHorizontal
}

// VisibleRange implements Manager. The column left of the current one is
// included once the offset shows part of it, and one column past the
// visible count is included until the visible columns reach the right edge.
func (m *Horizontal) VisibleRange() VisibleRange {
	count := itemCount(m.adapter)
	if count == 0 || m.host == nil {
		return EmptyRange
	}

	width, _ := m.viewport()
	distance := m.ColumnDistance()
	offset := m.state.Offset
	index := m.state.CurrentIndex

	low := index
	if offset > m.margin {
		low = index - 1
	}

	high := index + m.visibleColumns
	if offset-m.margin+distance*float64(m.visibleColumns) >= width {
		high = index + m.visibleColumns - 1
	}

	return VisibleRange{
		Low:  clampInt(low, 0, count-1),
		High: clampInt(high, 0, count-1),
	}
}

// ColumnX returns the left edge of the column at index.
func (m *Horizontal) ColumnX(index int) float64 {
	return m.margin + float64(index-m.state.CurrentIndex)*m.ColumnDistance() + m.state.Offset
}

// IndexAt returns the column under x, or -1 when x falls on a margin or
// outside the deck.
func (m *Horizontal) IndexAt(x float64) int {
	r := m.VisibleRange()
	for i := r.Low; !r.Empty() && i <= r.High; i++ {
		left := m.ColumnX(i)
		if x >= left && x < left+m.columnWidth {
			return i
		}
	}
	return -1
}

func (m *Horizontal) apply() {
	next := m.VisibleRange()
	if next != m.window.Range() {
		m.log.Debug().Stringer("range", next).Msg("visible range")
	}
	m.window.Update(next, int(m.columnWidth), m.height)

	if next.Empty() {
		return
	}
	for i := next.Low; i <= next.High; i++ {
		if h, ok := m.window.Handle(i); ok {
			m.host.SetOffset(h, m.ColumnX(i), 0)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
