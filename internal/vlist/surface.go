package vlist

// Row is an opaque visual unit produced by a RowFunc for a given item index.
// The list never inspects a row beyond handing it to the surface on insert and
// back to it on remove.
type Row interface{}

// RowFunc produces the row for an item index. It is called at most once per
// index between an insert and the next matching remove, and must return a
// distinct row instance each time.
type RowFunc func(index int) Row

// Surface is the ordered render target the list materializes rows into. Rows
// prepended and appended over time form one contiguous run starting at the
// current leading offset. Implementations may be a terminal, a GUI toolkit, or
// a headless double in tests.
type Surface interface {
	// Prepend places rows before all currently attached rows. Rows are given
	// in ascending index order.
	Prepend(rows []Row)

	// Append places rows after all currently attached rows. Rows are given in
	// ascending index order.
	Append(rows []Row)

	// Remove detaches a single previously inserted row.
	Remove(row Row)

	// SetContentHeight sets the total height of the scrollable content,
	// rendered or not.
	SetContentHeight(px float64)

	// SetOffset sets the leading space standing in for the unrendered rows
	// above the materialized window.
	SetOffset(px float64)

	// ViewportHeight reports the surface's live viewport height.
	ViewportHeight() float64

	// ScrollTop reports the current scroll position.
	ScrollTop() float64

	// SetScrollTop moves the scroll position, clamping as needed.
	SetScrollTop(px float64)

	// OnScroll registers fn to run on every scroll position change and returns
	// a function that detaches it.
	OnScroll(fn func()) (cancel func())
}

// FrameScheduler runs callbacks once, before the host's next repaint.
type FrameScheduler interface {
	OnNextFrame(fn func())
}
