package layout

import (
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// Window keeps the host's attached content in step with a visible range.
type Window struct {
	host     Host
	adapter  Adapter
	attached map[int]ContentHandle
	current  VisibleRange
	log      zerolog.Logger
}

func newWindow(log zerolog.Logger) *Window {
	return &Window{
		attached: make(map[int]ContentHandle),
		current:  EmptyRange,
		log:      log,
	}
}

// Range returns the materialized range.
func (w *Window) Range() VisibleRange {
	return w.current
}

// Handle returns the content attached at index.
func (w *Window) Handle(index int) (ContentHandle, bool) {
	h, ok := w.attached[index]
	return h, ok
}

// Update attaches and detaches content so that exactly the columns of next
// are attached. Newly attached content is sized width × height before it is
// placed.
func (w *Window) Update(next VisibleRange, width, height int) {
	if w.host == nil || w.adapter == nil {
		return
	}

	for _, op := range Diff(w.current, next) {
		w.log.Debug().
			Stringer("op", op.Kind).
			Int("low", op.Low).
			Int("high", op.High).
			Msg("window")

		for i := op.Low; i <= op.High; i++ {
			switch op.Kind {
			case OpAttach:
				h := w.adapter.ContentAt(i)
				w.host.Attach(h, width, height)
				w.attached[i] = h
			case OpDetach:
				if h, ok := w.attached[i]; ok {
					w.host.Detach(h)
					delete(w.attached, i)
				}
			}
		}
	}

	w.current = next
	w.reconcile(width, height)
}

// reconcile fixes up entries moved outside the range by Swap.
func (w *Window) reconcile(width, height int) {
	for _, i := range w.indices() {
		if !w.current.Contains(i) {
			w.host.Detach(w.attached[i])
			delete(w.attached, i)
		}
	}
	if w.current.Empty() {
		return
	}
	for i := w.current.Low; i <= w.current.High; i++ {
		if _, ok := w.attached[i]; !ok {
			h := w.adapter.ContentAt(i)
			w.host.Attach(h, width, height)
			w.attached[i] = h
		}
	}
}

// indices returns the attached indices in ascending order.
func (w *Window) indices() []int {
	return slices.Sorted(maps.Keys(w.attached))
}

// Reset detaches everything.
func (w *Window) Reset() {
	if w.host != nil {
		for _, i := range w.indices() {
			w.host.Detach(w.attached[i])
		}
	}
	clear(w.attached)
	w.current = EmptyRange
}

// Swap exchanges the content attached at a and b after the adapter swapped
// them.
func (w *Window) Swap(a, b int) {
	ha, okA := w.attached[a]
	hb, okB := w.attached[b]
	delete(w.attached, a)
	delete(w.attached, b)
	if okA {
		w.attached[b] = ha
	}
	if okB {
		w.attached[a] = hb
	}
}

func (w *Window) bind(host Host, adapter Adapter) {
	w.host = host
	w.adapter = adapter
}
