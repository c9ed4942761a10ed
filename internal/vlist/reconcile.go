package vlist

import (
	"fmt"

	"github.com/bruni-arendelle/simple-virtual-list/internal/dev"
)

// applyRange transforms the rendered window from the currently applied range
// to target with minimal structural change, preserving rows whose index is in
// both ranges. Rows are always produced and removed in ascending index order.
func (l *List) applyRange(target Range) {
	old := l.window.applied

	inserted, removed := 0, 0
	switch {
	case target.Empty():
		removed = l.removeSpan(old)

	case l.window.size() == 0:
		// first render or render after a full clear
		inserted = l.insertSpan(target, false)

	case !old.Overlaps(target):
		removed = l.removeSpan(old)
		inserted = l.insertSpan(target, false)

	default:
		// left edge
		if target.Start > old.Start {
			removed += l.removeSpan(Range{Start: old.Start, End: target.Start - 1})
		} else if target.Start < old.Start {
			inserted += l.insertSpan(Range{Start: target.Start, End: old.Start - 1}, true)
		}
		// right edge
		if target.End < old.End {
			removed += l.removeSpan(Range{Start: target.End + 1, End: old.End})
		} else if target.End > old.End {
			inserted += l.insertSpan(Range{Start: old.End + 1, End: target.End}, false)
		}
	}

	l.window.applied = target
	l.surface.SetOffset(l.itemHeight * float64(target.Start))

	if inserted > 0 || removed > 0 {
		dev.Debug(fmt.Sprintf("window [%d,%d] -> [%d,%d]: inserted %d, removed %d", old.Start, old.End, target.Start, target.End, inserted, removed))
	}
}

// insertSpan produces a row for every index in span, tracks each in the
// window, and attaches them to the surface as one prepended or appended run.
// An empty span is a no-op.
func (l *List) insertSpan(span Range, prepend bool) int {
	if span.Empty() {
		return 0
	}
	rows := make([]Row, 0, span.Len())
	for index := span.Start; index <= span.End; index++ {
		row := l.rowFunc(index)
		l.window.put(index, row)
		rows = append(rows, row)
	}
	if prepend {
		l.surface.Prepend(rows)
	} else {
		l.surface.Append(rows)
	}
	return len(rows)
}

// removeSpan detaches and drops every tracked row in span. Untracked indexes
// are skipped. An empty span is a no-op.
func (l *List) removeSpan(span Range) int {
	removed := 0
	for index := span.Start; index <= span.End; index++ {
		if row, found := l.window.remove(index); found {
			l.surface.Remove(row)
			removed++
		}
	}
	return removed
}
