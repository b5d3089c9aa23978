package columnlayout

import "github.com/xqrs/columnlayout/layout"

// SliceAdapter is a layout.Adapter over a slice of primitives. Rearranging
// the deck reorders the slice in place.
type SliceAdapter struct {
	items     []Primitive
	onReorder func(oldIndex, newIndex int)
}

var _ layout.Adapter = (*SliceAdapter)(nil)

// NewSliceAdapter returns an adapter presenting items in order.
func NewSliceAdapter(items ...Primitive) *SliceAdapter {
	return &SliceAdapter{items: items}
}

// SetReorderedFunc sets a function called after every swap.
func (a *SliceAdapter) SetReorderedFunc(handler func(oldIndex, newIndex int)) *SliceAdapter {
	a.onReorder = handler
	return a
}

// Items returns the primitives in their current order.
func (a *SliceAdapter) Items() []Primitive {
	return a.items
}

// IndexOf returns the position of p, or -1.
func (a *SliceAdapter) IndexOf(p Primitive) int {
	for i, item := range a.items {
		if item == p {
			return i
		}
	}
	return -1
}

// ItemCount implements layout.Adapter.
func (a *SliceAdapter) ItemCount() int {
	return len(a.items)
}

// ContentAt implements layout.Adapter.
func (a *SliceAdapter) ContentAt(index int) layout.ContentHandle {
	return a.items[index]
}

// OnRearranged implements layout.Adapter.
func (a *SliceAdapter) OnRearranged(oldIndex, newIndex int) {
	a.items[oldIndex], a.items[newIndex] = a.items[newIndex], a.items[oldIndex]
	if a.onReorder != nil {
		a.onReorder(oldIndex, newIndex)
	}
}
