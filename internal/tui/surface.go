package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/bruni-arendelle/simple-virtual-list/internal/vlist"
)

// Row is the terminal rendering of one list item: a fixed number of
// pre-styled lines, tagged with a unique id so every (index, mount) pair is a
// distinct instance.
type Row struct {
	ID    string
	Lines []string
}

// Surface renders a materialized window of rows into a terminal viewport,
// treating one terminal line as one height unit. It implements both
// vlist.Surface and vlist.FrameScheduler: frame callbacks queue up and run
// when the app's next repaint message arrives, mirroring an animation-frame
// primitive with bubbletea's message round-trip.
type Surface struct {
	rows           []*Row
	viewportLines  int
	contentHeight  float64
	offset         float64
	scrollTop      float64
	listeners      map[int]func()
	nextListenerID int
	frame          []func()
}

var _ vlist.Surface = (*Surface)(nil)
var _ vlist.FrameScheduler = (*Surface)(nil)

func NewSurface() *Surface {
	return &Surface{
		listeners: make(map[int]func()),
	}
}

func (s *Surface) Prepend(rows []vlist.Row) {
	s.rows = append(asTUIRows(rows), s.rows...)
}

func (s *Surface) Append(rows []vlist.Row) {
	s.rows = append(s.rows, asTUIRows(rows)...)
}

func (s *Surface) Remove(row vlist.Row) {
	target, ok := row.(*Row)
	if !ok {
		panic("tui surface can only hold *tui.Row rows")
	}
	for i, r := range s.rows {
		if r == target {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return
		}
	}
}

func (s *Surface) SetContentHeight(px float64) {
	s.contentHeight = math.Max(0, px)
	s.scrollTop = s.clampScrollTop(s.scrollTop)
}

func (s *Surface) SetOffset(px float64) {
	s.offset = math.Max(0, px)
}

func (s *Surface) ViewportHeight() float64 {
	return float64(s.viewportLines)
}

func (s *Surface) ScrollTop() float64 {
	return s.scrollTop
}

func (s *Surface) SetScrollTop(px float64) {
	clamped := s.clampScrollTop(px)
	if clamped == s.scrollTop {
		return
	}
	s.scrollTop = clamped
	s.notifyScroll()
}

// ScrollBy moves the scroll position by delta lines, clamped to the content.
func (s *Surface) ScrollBy(delta float64) {
	s.SetScrollTop(s.scrollTop + delta)
}

func (s *Surface) OnScroll(fn func()) (cancel func()) {
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// OnNextFrame queues fn to run on the next FlushFrame call.
func (s *Surface) OnNextFrame(fn func()) {
	s.frame = append(s.frame, fn)
}

// HasPendingFrame reports whether a repaint message should be scheduled.
func (s *Surface) HasPendingFrame() bool {
	return len(s.frame) > 0
}

// FlushFrame runs all queued frame callbacks. Callbacks queued while flushing
// run on the following frame, like an animation-frame primitive.
func (s *Surface) FlushFrame() {
	pending := s.frame
	s.frame = nil
	for _, fn := range pending {
		fn()
	}
}

// SetViewportHeight resizes the viewport. The caller decides whether a
// recompute should follow, see Invalidate.
func (s *Surface) SetViewportHeight(lines int) {
	s.viewportLines = max(0, lines)
	s.scrollTop = s.clampScrollTop(s.scrollTop)
}

// Invalidate notifies scroll listeners without moving the scroll position,
// forcing a throttled recompute after e.g. a viewport resize.
func (s *Surface) Invalidate() {
	s.notifyScroll()
}

// Rows returns the currently attached rows in surface order.
func (s *Surface) Rows() []*Row {
	return s.rows
}

// View renders the visible slice of the virtual canvas: blank lines where the
// leading offset or the trailing unrendered space is on screen, row lines
// elsewhere.
func (s *Surface) View(width int) string {
	var windowLines []string
	for _, row := range s.rows {
		windowLines = append(windowLines, row.Lines...)
	}

	top := int(math.Floor(s.scrollTop))
	offset := int(math.Floor(s.offset))
	visible := make([]string, 0, s.viewportLines)
	for y := top; y < top+s.viewportLines; y++ {
		lineIdx := y - offset
		if 0 <= lineIdx && lineIdx < len(windowLines) {
			visible = append(visible, windowLines[lineIdx])
		} else {
			visible = append(visible, "")
		}
	}
	return lipgloss.NewStyle().Width(width).Height(s.viewportLines).Render(strings.Join(visible, "\n"))
}

func (s *Surface) clampScrollTop(px float64) float64 {
	maxScroll := math.Max(0, s.contentHeight-float64(s.viewportLines))
	return math.Max(0, math.Min(maxScroll, px))
}

func (s *Surface) notifyScroll() {
	for _, fn := range s.listeners {
		fn()
	}
}

func asTUIRows(rows []vlist.Row) []*Row {
	res := make([]*Row, len(rows))
	for i, r := range rows {
		row, ok := r.(*Row)
		if !ok {
			panic("tui surface can only hold *tui.Row rows")
		}
		res[i] = row
	}
	return res
}
