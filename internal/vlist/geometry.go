package vlist

import "math"

// MinItemsPerView guarantees a non-degenerate window even for tiny or
// zero-height viewports
const MinItemsPerView = 3

// Range is an inclusive span of item indexes. The canonical empty range has
// End < Start, so a valid single-row range [0,0] is never ambiguous with
// "nothing rendered".
type Range struct {
	Start, End int
}

// EmptyRange returns the canonical empty range.
func EmptyRange() Range {
	return Range{Start: 0, End: -1}
}

func (r Range) Empty() bool {
	return r.End < r.Start
}

// Len returns the number of indexes in the range, 0 if empty.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

func (r Range) Contains(index int) bool {
	return !r.Empty() && r.Start <= index && index <= r.End
}

// Overlaps returns true if the two ranges share at least one index.
func (r Range) Overlaps(other Range) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.Start <= other.End && other.Start <= r.End
}

// ItemsPerView returns how many rows of itemHeight fit in viewportHeight,
// rounding up, floored at MinItemsPerView.
func ItemsPerView(viewportHeight, itemHeight float64) int {
	return max(int(math.Ceil(viewportHeight/itemHeight)), MinItemsPerView)
}

// VisibleRange translates a scroll position into the range of item indexes
// that must be rendered, overscan rows included on both sides, clamped to
// [0, itemCount-1]. Out of bounds scroll positions, negative included, clamp
// rather than producing out of bounds indexes.
func VisibleRange(scrollTop, itemHeight float64, overscan, itemsPerView, itemCount int) Range {
	if itemCount == 0 {
		return EmptyRange()
	}
	centerIndex := int(math.Floor(scrollTop / itemHeight))
	return Range{
		Start: clampValMinMax(centerIndex-overscan, 0, itemCount-1),
		End:   clampValMinMax(centerIndex+itemsPerView-1+overscan, 0, itemCount-1),
	}
}

func clampValMinMax(v, minimum, maximum int) int {
	return max(minimum, min(maximum, v))
}
