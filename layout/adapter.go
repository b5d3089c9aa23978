// Package layout positions a deck of columns inside a viewport. It owns the
// scroll state of a deck, decides which columns are materialized, and places
// them through a Host. Two managers are provided: Horizontal pages columns
// side by side and Vertical stacks them as cards that can be reordered.
package layout

// ContentHandle identifies one column's content. The layout never looks
// inside a handle; it only hands it back to the Host.
type ContentHandle any

// Adapter supplies the columns of a deck.
type Adapter interface {
	// ItemCount returns the number of columns.
	ItemCount() int
	// ContentAt returns the content of the column at index. index is always
	// within [0, ItemCount()).
	ContentAt(index int) ContentHandle
	// OnRearranged is called once per swap while the user reorders columns.
	// The backing order must be updated before it returns.
	OnRearranged(oldIndex, newIndex int)
}

// Host is the viewport columns are attached to.
type Host interface {
	// Size returns the viewport size in cells.
	Size() (width, height int)
	// Attach adds content to the viewport with the given size.
	Attach(h ContentHandle, width, height int)
	// Detach removes content from the viewport.
	Detach(h ContentHandle)
	// SetOffset moves attached content without re-laying out the viewport.
	SetOffset(h ContentHandle, x, y float64)
	// SetDepth sets the stacking order of attached content. Higher depths
	// are drawn on top.
	SetDepth(h ContentHandle, depth int)
}

// Orientation is the scrolling direction of a manager.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// Manager is the common surface of the deck managers.
type Manager interface {
	// Attach binds the manager to host and lays out the adapter's columns.
	// Attaching a manager bound to a different host panics.
	Attach(host Host, adapter Adapter)
	// Detach removes all attached content and releases the host.
	Detach()
	// Host returns the bound host, or nil.
	Host() Host
	// Relayout re-measures the viewport and re-materializes every visible
	// column.
	Relayout()

	// ScrollBy moves the content by delta cells along the scroll axis.
	// Positive deltas move content right (or down).
	ScrollBy(delta float64)
	// ScrollPosition is a continuous position that grows as later columns
	// come into view. ScrollBy(d) changes it by -d unless clamped.
	ScrollPosition() float64
	// ColumnDistance is the scroll distance between two neighbouring
	// columns.
	ColumnDistance() float64
	// CurrentIndex returns the index of the first visible column.
	CurrentIndex() int
	// ColumnCount returns the adapter's item count.
	ColumnCount() int
	// VisibleRange returns the range of columns that should be
	// materialized.
	VisibleRange() VisibleRange
	// Orientation returns the scroll axis.
	Orientation() Orientation
}

// ScrollTo moves m so that its scroll position becomes position.
func ScrollTo(m Manager, position float64) {
	m.ScrollBy(m.ScrollPosition() - position)
}

func itemCount(adapter Adapter) int {
	if adapter == nil {
		return 0
	}
	if n := adapter.ItemCount(); n > 0 {
		return n
	}
	return 0
}
