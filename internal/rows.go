package internal

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/bruni-arendelle/simple-virtual-list/internal/color"
	"github.com/bruni-arendelle/simple-virtual-list/internal/style"
	"github.com/bruni-arendelle/simple-virtual-list/internal/tui"
	"github.com/bruni-arendelle/simple-virtual-list/internal/vlist"
)

var categories = []string{
	"svc-auth",
	"svc-billing",
	"svc-gateway",
	"svc-ingest",
	"svc-search",
	"svc-worker",
}

const categoryColWidth = 12

// rowRenderer produces demo rows. It is shared by pointer with the row
// producing func so rows picked up after a resize see the current width.
type rowRenderer struct {
	width    int
	rowLines int
}

// row is the vlist.RowFunc for the demo: a freshly-built *tui.Row per call,
// uniquely identified so re-mounts of the same index are distinct instances.
func (r *rowRenderer) row(index int) vlist.Row {
	lines := make([]string, max(r.rowLines, 1))
	lines[0] = r.styledText(index)
	for i := 1; i < len(lines); i++ {
		lines[i] = style.IndexStyle.Render(runewidth.FillRight("", indexColWidth) + "│")
	}
	return &tui.Row{
		ID:    uuid.New().String(),
		Lines: lines,
	}
}

const indexColWidth = 8

func (r *rowRenderer) styledText(index int) string {
	category := categories[index%len(categories)]
	indexCol := style.IndexStyle.Render(runewidth.FillRight(fmt.Sprintf("%d", index), indexColWidth))
	categoryCol := lipgloss.NewStyle().
		Foreground(color.CategoryColor(category)).
		Render(runewidth.FillRight(category, categoryColWidth))
	line := indexCol + categoryCol + rowBody(index)
	if r.width > 0 {
		line = truncate.StringWithTail(line, uint(r.width), "...")
	}
	return line
}

// plainText is the unstyled form of a row's first line, used for the
// clipboard and for saving to file.
func (r *rowRenderer) plainText(index int) string {
	category := categories[index%len(categories)]
	return fmt.Sprintf("%s%s%s",
		runewidth.FillRight(fmt.Sprintf("%d", index), indexColWidth),
		runewidth.FillRight(category, categoryColWidth),
		rowBody(index),
	)
}

func rowBody(index int) string {
	return fmt.Sprintf("event %08x processed in %dms", uint32(index)*2654435761, 1+index%240)
}
