package vlist

import "testing"

func TestWindow_PutGetRemove(t *testing.T) {
	w := newWindow()
	if w.size() != 0 {
		t.Errorf("expected new window to be empty, got size %d", w.size())
	}
	if !w.applied.Empty() {
		t.Error("expected new window to have an empty applied range")
	}

	w.put(3, "row3")
	w.put(5, "row5")
	w.put(4, "row4")

	if w.size() != 3 {
		t.Errorf("expected size 3, got %d", w.size())
	}
	row, found := w.get(4)
	if !found || row != "row4" {
		t.Errorf("expected to find row4 at index 4, got %v (found=%t)", row, found)
	}

	row, found = w.remove(4)
	if !found || row != "row4" {
		t.Errorf("expected remove to return row4, got %v (found=%t)", row, found)
	}
	if _, found = w.get(4); found {
		t.Error("expected index 4 to be gone after remove")
	}

	// removing an untracked index reports absence
	if _, found = w.remove(100); found {
		t.Error("expected remove of untracked index to report absence")
	}
}

func TestWindow_IndexesAscending(t *testing.T) {
	w := newWindow()
	for _, index := range []int{9, 2, 7, 3, 5} {
		w.put(index, index)
	}
	expected := []int{2, 3, 5, 7, 9}
	indexes := w.indexes()
	if len(indexes) != len(expected) {
		t.Fatalf("expected %d indexes, got %d", len(expected), len(indexes))
	}
	for i := range expected {
		if indexes[i] != expected[i] {
			t.Errorf("expected index %d at position %d, got %d", expected[i], i, indexes[i])
		}
	}
}

func TestWindow_Clear(t *testing.T) {
	w := newWindow()
	w.put(0, "row0")
	w.put(1, "row1")
	w.applied = Range{Start: 0, End: 1}

	w.clear()
	if w.size() != 0 {
		t.Errorf("expected cleared window to be empty, got size %d", w.size())
	}
	if !w.applied.Empty() {
		t.Error("expected cleared window to have an empty applied range")
	}
}
