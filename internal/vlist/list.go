package vlist

import (
	"errors"
	"fmt"

	"github.com/bruni-arendelle/simple-virtual-list/internal/dev"
)

var (
	// ErrNonPositiveItemHeight is returned by New when Config.ItemHeight <= 0.
	// Range math divides by the item height, so this is the one configuration
	// problem that cannot degrade gracefully.
	ErrNonPositiveItemHeight = errors.New("item height must be positive")

	// ErrNilRowFunc is returned by New when no row producer is configured.
	ErrNilRowFunc = errors.New("row producer must not be nil")

	// ErrNilSurface is returned by New when no render surface is configured.
	ErrNilSurface = errors.New("render surface must not be nil")

	// ErrNilScheduler is returned by New when no frame scheduler is configured.
	ErrNilScheduler = errors.New("frame scheduler must not be nil")
)

// Config configures a List. It is fixed at construction; only the item count
// may change afterwards, via (*List).Update.
type Config struct {
	// Surface is the render target rows are attached to.
	Surface Surface

	// Scheduler is the host's "run once before next repaint" primitive.
	Scheduler FrameScheduler

	// RowFunc produces the row for an item index.
	RowFunc RowFunc

	// ItemCount is the logical number of rows. Negative counts clamp to 0.
	ItemCount int

	// ItemHeight is the fixed height of every row. Must be positive.
	ItemHeight float64

	// Overscan is the number of extra rows rendered on each side of the
	// visible span. Negative means default: items-per-view at construction
	// time, i.e. roughly one screen above and one below.
	Overscan int
}

// List renders a logically large fixed-row-height list by materializing only
// the rows near the viewport, recycling them as the surface scrolls. All
// methods must be called from the host's single event loop; there is no
// internal locking.
type List struct {
	surface    Surface
	scheduler  FrameScheduler
	rowFunc    RowFunc
	itemCount  int
	itemHeight float64
	overscan   int
	window     *window
	throttle   *scrollThrottle
	disposed   bool
}

// New validates config, performs the initial render, and starts listening for
// scroll notifications on the surface.
func New(config Config) (*List, error) {
	if config.Surface == nil {
		return nil, ErrNilSurface
	}
	if config.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if config.RowFunc == nil {
		return nil, ErrNilRowFunc
	}
	if config.ItemHeight <= 0 {
		return nil, fmt.Errorf("%w, got %v", ErrNonPositiveItemHeight, config.ItemHeight)
	}

	l := &List{
		surface:    config.Surface,
		scheduler:  config.Scheduler,
		rowFunc:    config.RowFunc,
		itemCount:  max(config.ItemCount, 0),
		itemHeight: config.ItemHeight,
		overscan:   config.Overscan,
		window:     newWindow(),
	}
	if l.overscan < 0 {
		l.overscan = l.ItemsPerView()
	}

	l.surface.SetContentHeight(l.TotalHeight())
	l.surface.SetOffset(0)
	l.renderWindow()
	l.throttle = newScrollThrottle(l.surface, l.scheduler, l.renderWindow)
	return l, nil
}

// Update replaces the item count, fully tears down the current window, resets
// the scroll position to the top, and renders fresh against the new count. No
// row survives an Update. No-op after Dispose.
func (l *List) Update(itemCount int) {
	if l.disposed {
		return
	}
	dev.Debug(fmt.Sprintf("updating item count %d -> %d", l.itemCount, itemCount))
	l.itemCount = max(itemCount, 0)
	l.clearWindow()
	l.surface.SetContentHeight(l.TotalHeight())
	l.surface.SetScrollTop(0)
	l.renderWindow()
}

// Dispose detaches the scroll listener and removes every rendered row. The
// list is unusable afterwards. Safe to call more than once.
func (l *List) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	l.throttle.stop()
	l.clearWindow()
}

// ViewportHeight reports the surface's live viewport height.
func (l *List) ViewportHeight() float64 {
	return l.surface.ViewportHeight()
}

// ItemsPerView reports how many rows fit in the current viewport.
func (l *List) ItemsPerView() int {
	return ItemsPerView(l.surface.ViewportHeight(), l.itemHeight)
}

// ItemCount reports the current logical number of rows.
func (l *List) ItemCount() int {
	return l.itemCount
}

// TotalHeight reports the full height of the list, rendered or not.
func (l *List) TotalHeight() float64 {
	return l.itemHeight * float64(l.itemCount)
}

// Offset reports the leading space standing in for the unrendered rows above
// the window.
func (l *List) Offset() float64 {
	return l.itemHeight * float64(l.window.applied.Start)
}

// Rendered reports the range of item indexes currently materialized.
func (l *List) Rendered() Range {
	return l.window.applied
}

// renderWindow recomputes the target range from the surface's current scroll
// position and reconciles the rendered window against it. This is the frame
// callback body, so it re-checks disposal: a callback scheduled just before
// Dispose may still fire after it.
func (l *List) renderWindow() {
	if l.disposed {
		return
	}
	target := VisibleRange(l.surface.ScrollTop(), l.itemHeight, l.overscan, l.ItemsPerView(), l.itemCount)
	l.applyRange(target)
}

// clearWindow detaches every tracked row and resets the applied range and
// leading offset.
func (l *List) clearWindow() {
	for _, index := range l.window.indexes() {
		if row, found := l.window.remove(index); found {
			l.surface.Remove(row)
		}
	}
	l.window.clear()
	l.surface.SetOffset(0)
}
