package vlist

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// window holds the materialized index -> row mapping plus the range those rows
// were rendered for. Outside a reconciliation pass the mapping's key set is
// exactly {applied.Start..applied.End}.
type window struct {
	rows    *redblacktree.Tree
	applied Range
}

func newWindow() *window {
	return &window{
		rows:    redblacktree.NewWith(utils.IntComparator),
		applied: EmptyRange(),
	}
}

func (w *window) put(index int, row Row) {
	w.rows.Put(index, row)
}

func (w *window) get(index int) (Row, bool) {
	row, found := w.rows.Get(index)
	if !found {
		return nil, false
	}
	return row, true
}

// remove drops the row at index, reporting whether it was tracked.
func (w *window) remove(index int) (Row, bool) {
	row, found := w.rows.Get(index)
	if !found {
		return nil, false
	}
	w.rows.Remove(index)
	return row, true
}

func (w *window) size() int {
	return w.rows.Size()
}

// indexes returns the tracked indexes in ascending order.
func (w *window) indexes() []int {
	keys := w.rows.Keys()
	indexes := make([]int, len(keys))
	for i, k := range keys {
		indexes[i] = k.(int)
	}
	return indexes
}

func (w *window) clear() {
	w.rows.Clear()
	w.applied = EmptyRange()
}
