package layout

// ScrollState is the scroll position of a horizontal deck: the index of the
// leftmost column and its offset from its resting place in cells.
type ScrollState struct {
	Offset       float64
	CurrentIndex int
	ItemCount    int
}

// ColumnDistance returns the distance between the left edges of two
// neighbouring columns.
func ColumnDistance(width, margin float64) float64 {
	return width + 2*margin
}

// ApplyDelta adds delta to the offset and then moves the current index one
// column at a time until the offset lies within (-(width+margin), margin].
// At the first and last index the offset is kept as is, so the deck can be
// pulled past its ends.
func (s *ScrollState) ApplyDelta(delta, width, margin float64) {
	s.Offset += delta

	distance := ColumnDistance(width, margin)
	if distance <= 0 {
		return
	}

	for {
		switch {
		case s.Offset > margin && s.CurrentIndex > 0:
			s.CurrentIndex--
			s.Offset -= distance
		case s.Offset < -(width+margin) && s.CurrentIndex < s.ItemCount-1:
			s.CurrentIndex++
			s.Offset += distance
		default:
			return
		}
	}
}

// ScrollPosition returns CurrentIndex·distance − Offset.
func (s ScrollState) ScrollPosition(width, margin float64) float64 {
	return float64(s.CurrentIndex)*ColumnDistance(width, margin) - s.Offset
}

// Clamp keeps CurrentIndex within the item count after the adapter changed.
func (s *ScrollState) Clamp(itemCount int) {
	s.ItemCount = itemCount
	if s.CurrentIndex > itemCount-1 {
		s.CurrentIndex = itemCount - 1
	}
	if s.CurrentIndex < 0 {
		s.CurrentIndex = 0
	}
}
