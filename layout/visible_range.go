package layout

import "fmt"

// VisibleRange is an inclusive range of column indices.
type VisibleRange struct {
	Low, High int
}

// EmptyRange is the range of a deck with nothing to show.
var EmptyRange = VisibleRange{Low: -1, High: -1}

// Empty reports whether the range contains no index.
func (r VisibleRange) Empty() bool {
	return r.Low < 0 || r.High < r.Low
}

// Contains reports whether index lies within the range.
func (r VisibleRange) Contains(index int) bool {
	return !r.Empty() && index >= r.Low && index <= r.High
}

// Len returns the number of indices in the range.
func (r VisibleRange) Len() int {
	if r.Empty() {
		return 0
	}
	return r.High - r.Low + 1
}

func (r VisibleRange) String() string {
	if r.Empty() {
		return "[]"
	}
	return fmt.Sprintf("[%d,%d]", r.Low, r.High)
}

// OpKind is the kind of a windowing operation.
type OpKind int

const (
	OpAttach OpKind = iota
	OpDetach
)

func (k OpKind) String() string {
	if k == OpDetach {
		return "detach"
	}
	return "attach"
}

// Op attaches or detaches the inclusive index range [Low, High].
type Op struct {
	Kind      OpKind
	Low, High int
}

// Diff returns the operations that turn the materialized range prev into
// next. Equal ranges yield no operations; disjoint ranges detach prev as a
// whole and attach next as a whole.
func Diff(prev, next VisibleRange) []Op {
	switch {
	case prev.Empty() && next.Empty():
		return nil
	case prev.Empty():
		return []Op{{Kind: OpAttach, Low: next.Low, High: next.High}}
	case next.Empty():
		return []Op{{Kind: OpDetach, Low: prev.Low, High: prev.High}}
	case prev == next:
		return nil
	case next.Low > prev.High || next.High < prev.Low:
		return []Op{
			{Kind: OpDetach, Low: prev.Low, High: prev.High},
			{Kind: OpAttach, Low: next.Low, High: next.High},
		}
	}

	var ops []Op
	if next.Low < prev.Low {
		ops = append(ops, Op{Kind: OpAttach, Low: next.Low, High: prev.Low - 1})
	}
	if next.Low > prev.Low {
		ops = append(ops, Op{Kind: OpDetach, Low: prev.Low, High: next.Low - 1})
	}
	if next.High < prev.High {
		ops = append(ops, Op{Kind: OpDetach, Low: next.High + 1, High: prev.High})
	}
	if next.High > prev.High {
		ops = append(ops, Op{Kind: OpAttach, Low: prev.High + 1, High: next.High})
	}
	return ops
}
