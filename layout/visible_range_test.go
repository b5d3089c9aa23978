package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		prev VisibleRange
		next VisibleRange
		want []Op
	}{
		{
			name: "same range",
			prev: VisibleRange{2, 4},
			next: VisibleRange{2, 4},
		},
		{
			name: "both empty",
			prev: EmptyRange,
			next: EmptyRange,
		},
		{
			name: "from empty",
			prev: EmptyRange,
			next: VisibleRange{0, 2},
			want: []Op{{OpAttach, 0, 2}},
		},
		{
			name: "to empty",
			prev: VisibleRange{0, 2},
			next: EmptyRange,
			want: []Op{{OpDetach, 0, 2}},
		},
		{
			name: "shift right",
			prev: VisibleRange{2, 4},
			next: VisibleRange{3, 5},
			want: []Op{{OpDetach, 2, 2}, {OpAttach, 5, 5}},
		},
		{
			name: "shift left",
			prev: VisibleRange{2, 4},
			next: VisibleRange{1, 3},
			want: []Op{{OpAttach, 1, 1}, {OpDetach, 4, 4}},
		},
		{
			name: "grow both ends",
			prev: VisibleRange{2, 4},
			next: VisibleRange{0, 6},
			want: []Op{{OpAttach, 0, 1}, {OpAttach, 5, 6}},
		},
		{
			name: "shrink both ends",
			prev: VisibleRange{0, 6},
			next: VisibleRange{2, 4},
			want: []Op{{OpDetach, 0, 1}, {OpDetach, 5, 6}},
		},
		{
			name: "disjoint",
			prev: VisibleRange{0, 2},
			next: VisibleRange{5, 7},
			want: []Op{{OpDetach, 0, 2}, {OpAttach, 5, 7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diff(tt.prev, tt.next))
		})
	}
}

func TestVisibleRange(t *testing.T) {
	assert.True(t, EmptyRange.Empty())
	assert.Equal(t, 0, EmptyRange.Len())
	assert.False(t, EmptyRange.Contains(0))
	assert.Equal(t, "[]", EmptyRange.String())

	r := VisibleRange{Low: 3, High: 5}
	assert.False(t, r.Empty())
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
	assert.Equal(t, "[3,5]", r.String())
}

func TestWindow_SwapOutsideRangeIsReconciled(t *testing.T) {
	host := newFakeHost(10, 10)
	adapter := newFakeAdapter(5)
	w := newWindow(testLogger)
	w.bind(host, adapter)

	w.Update(VisibleRange{0, 1}, 10, 10)
	adapter.OnRearranged(1, 2)
	w.Swap(1, 2)
	w.Update(VisibleRange{0, 1}, 10, 10)

	assert.Len(t, host.placed, 2)
	assert.Contains(t, host.placed, "c0")
	assert.Contains(t, host.placed, "c2", "the card now at index 1")
	assert.NotContains(t, host.placed, "c1")

	h, ok := w.Handle(1)
	assert.True(t, ok)
	assert.Equal(t, "c2", h)
}

func TestWindow_ReconcileDetachesInIndexOrder(t *testing.T) {
	host := newFakeHost(10, 10)
	adapter := newFakeAdapter(10)
	w := newWindow(testLogger)
	w.bind(host, adapter)

	w.Update(VisibleRange{0, 3}, 10, 10)
	for i := 0; i <= 3; i++ {
		adapter.OnRearranged(i, i+5)
		w.Swap(i, i+5)
	}
	w.Update(VisibleRange{0, 3}, 10, 10)

	assert.Equal(t, []ContentHandle{"c0", "c1", "c2", "c3"}, host.detached)
	assert.Len(t, host.placed, 4)
	assert.Contains(t, host.placed, "c5")

	host.detached = nil
	w.Reset()
	assert.Equal(t, []ContentHandle{"c5", "c6", "c7", "c8"}, host.detached)
}
