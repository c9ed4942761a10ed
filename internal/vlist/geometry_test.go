package vlist

import "testing"

func TestRange_Empty(t *testing.T) {
	if !EmptyRange().Empty() {
		t.Error("expected EmptyRange to be empty")
	}
	if EmptyRange().Len() != 0 {
		t.Errorf("expected empty range to have length 0, got %d", EmptyRange().Len())
	}
	singleRow := Range{Start: 0, End: 0}
	if singleRow.Empty() {
		t.Error("expected [0,0] to be a valid single-row range, not empty")
	}
	if singleRow.Len() != 1 {
		t.Errorf("expected [0,0] to have length 1, got %d", singleRow.Len())
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{Start: 3, End: 5}
	for _, index := range []int{3, 4, 5} {
		if !r.Contains(index) {
			t.Errorf("expected [3,5] to contain %d", index)
		}
	}
	for _, index := range []int{2, 6, -1} {
		if r.Contains(index) {
			t.Errorf("expected [3,5] to not contain %d", index)
		}
	}
	if EmptyRange().Contains(0) {
		t.Error("expected empty range to contain nothing")
	}
}

func TestRange_Overlaps(t *testing.T) {
	tests := []struct {
		a, b     Range
		expected bool
	}{
		{Range{0, 14}, Range{15, 34}, false},
		{Range{0, 14}, Range{14, 34}, true},
		{Range{0, 14}, Range{5, 24}, true},
		{Range{5, 24}, Range{0, 14}, true},
		{Range{500, 509}, Range{0, 9}, false},
		{EmptyRange(), Range{0, 9}, false},
		{Range{0, 9}, EmptyRange(), false},
	}
	for _, test := range tests {
		if got := test.a.Overlaps(test.b); got != test.expected {
			t.Errorf("[%d,%d].Overlaps([%d,%d]) = %t, want %t", test.a.Start, test.a.End, test.b.Start, test.b.End, got, test.expected)
		}
	}
}

func TestItemsPerView(t *testing.T) {
	tests := []struct {
		viewportHeight, itemHeight float64
		expected                   int
	}{
		{200, 20, 10},
		{201, 20, 11},
		{199, 20, 10},
		{20, 20, 3},  // floor of 3
		{0, 20, 3},   // zero-height viewport still gets a window
		{500, 25, 20},
		{10, 3, 4},
	}
	for _, test := range tests {
		if got := ItemsPerView(test.viewportHeight, test.itemHeight); got != test.expected {
			t.Errorf("ItemsPerView(%v, %v) = %d, want %d", test.viewportHeight, test.itemHeight, got, test.expected)
		}
	}
}

func TestVisibleRange(t *testing.T) {
	// itemCount=1000, itemHeight=20, overscan=5, viewport=200 => itemsPerView=10
	tests := []struct {
		name      string
		scrollTop float64
		expected  Range
	}{
		{"top", 0, Range{0, 14}},
		{"negative scroll clamps", -100, Range{0, 14}},
		{"center index 10", 200, Range{5, 24}},
		{"center index 20", 400, Range{15, 34}},
		{"mid row rounds down", 410, Range{15, 34}},
		{"bottom", 19800, Range{985, 999}},
		{"past bottom clamps", 50000, Range{999, 999}},
	}
	for _, test := range tests {
		got := VisibleRange(test.scrollTop, 20, 5, 10, 1000)
		if got != test.expected {
			t.Errorf("%s: VisibleRange(%v) = [%d,%d], want [%d,%d]", test.name, test.scrollTop, got.Start, got.End, test.expected.Start, test.expected.End)
		}
	}
}

func TestVisibleRange_NoItems(t *testing.T) {
	got := VisibleRange(0, 20, 5, 10, 0)
	if !got.Empty() {
		t.Errorf("expected empty range for zero items, got [%d,%d]", got.Start, got.End)
	}
}

func TestVisibleRange_SmallList(t *testing.T) {
	// fewer items than fit on screen: whole list, nothing out of bounds
	got := VisibleRange(0, 20, 5, 10, 4)
	if got != (Range{0, 3}) {
		t.Errorf("expected [0,3], got [%d,%d]", got.Start, got.End)
	}
}

func TestVisibleRange_CoversViewport(t *testing.T) {
	// any in-bounds scroll position yields at least itemsPerView rows when the
	// list is long enough to allow it
	itemsPerView := ItemsPerView(200, 20)
	for scrollTop := float64(0); scrollTop <= 19800; scrollTop += 130 {
		r := VisibleRange(scrollTop, 20, 5, itemsPerView, 1000)
		if r.Start < 0 || r.End > 999 || r.Start > r.End {
			t.Fatalf("out of bounds range [%d,%d] at scrollTop %v", r.Start, r.End, scrollTop)
		}
		if r.Len() < itemsPerView {
			t.Fatalf("window [%d,%d] smaller than %d rows at scrollTop %v", r.Start, r.End, itemsPerView, scrollTop)
		}
	}
}
