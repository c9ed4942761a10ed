package internal

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/bruni-arendelle/simple-virtual-list/internal/command"
	"github.com/bruni-arendelle/simple-virtual-list/internal/constants"
	"github.com/bruni-arendelle/simple-virtual-list/internal/dev"
	"github.com/bruni-arendelle/simple-virtual-list/internal/fileio"
	"github.com/bruni-arendelle/simple-virtual-list/internal/help"
	"github.com/bruni-arendelle/simple-virtual-list/internal/keymap"
	"github.com/bruni-arendelle/simple-virtual-list/internal/message"
	"github.com/bruni-arendelle/simple-virtual-list/internal/style"
	"github.com/bruni-arendelle/simple-virtual-list/internal/toast"
	"github.com/bruni-arendelle/simple-virtual-list/internal/tui"
	"github.com/bruni-arendelle/simple-virtual-list/internal/util"
	"github.com/bruni-arendelle/simple-virtual-list/internal/vlist"
)

type Model struct {
	config        Config
	keyMap        keymap.KeyMap
	width, height int
	initialized   bool
	showHelp      bool
	surface       *tui.Surface
	renderer      *rowRenderer
	list          *vlist.List
	toast         toast.Model
	err           error
}

func InitialModel(config Config) Model {
	return Model{
		config:   config,
		keyMap:   config.KeyMap,
		surface:  tui.NewSurface(),
		renderer: &rowRenderer{rowLines: config.RowLines},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	dev.DebugMsg("App", msg)

	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case message.FrameMsg:
		// repaint tick: run the recompute the scroll throttle scheduled
		m.surface.FlushFrame()
		return m, m.maybeFrameCmd()

	// WindowSizeMsg arrives once on startup, then again every time the window is resized
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case command.ContentCopiedToClipboardMsg:
		toastMsg := "Copied to clipboard"
		toastStyle := style.ToastStyle
		if msg.Err != nil {
			toastMsg = fmt.Sprintf("Error copying to clipboard: %s", msg.Err.Error())
			toastStyle = style.ErrorStyle
		}
		return m.withToast(toastMsg, toastStyle)

	case fileio.SaveCompleteMsg:
		toastMsg := msg.SuccessMessage
		toastStyle := style.ToastStyle
		if msg.ErrMessage != "" {
			toastMsg = fmt.Sprintf("Error saving: %s", msg.ErrMessage)
			toastStyle = style.ErrorStyle
		}
		return m.withToast(toastMsg, toastStyle)

	case toast.TimeoutMsg:
		m.toast, cmd = m.toast.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case message.ErrMsg:
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return style.ErrorStyle.Render(m.err.Error())
	}
	if !m.initialized {
		return ""
	}
	if m.showHelp {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			help.MakeHelp(m.keyMap, style.KeyHelpStyle),
		)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.topBarView(),
		m.surface.View(m.width),
		m.footerView(),
	)
}

func (m Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	dev.Debug(fmt.Sprintf("resize %dx%d", msg.Width, msg.Height))
	widthChanged := m.initialized && msg.Width != m.width
	m.width, m.height = msg.Width, msg.Height
	m.renderer.width = msg.Width
	m.surface.SetViewportHeight(max(0, msg.Height-constants.TopBarHeight-constants.FooterHeight))

	if !m.initialized {
		list, err := vlist.New(vlist.Config{
			Surface:    m.surface,
			Scheduler:  m.surface,
			RowFunc:    m.renderer.row,
			ItemCount:  m.config.ItemCount,
			ItemHeight: float64(m.config.RowLines),
			Overscan:   m.config.Overscan,
		})
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.list = list
		m.initialized = true
		return m, nil
	}

	if widthChanged {
		// rendered rows bake in the width, so re-render them all
		m.list.Update(m.list.ItemCount())
	} else {
		m.surface.Invalidate()
	}
	return m, m.maybeFrameCmd()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if !m.initialized {
		return m, nil
	}

	rowHeight := float64(m.config.RowLines)
	viewport := m.surface.ViewportHeight()

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.list.Dispose()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Up):
		m.surface.ScrollBy(-rowHeight)

	case key.Matches(msg, m.keyMap.Down):
		m.surface.ScrollBy(rowHeight)

	case key.Matches(msg, m.keyMap.HalfPageUp):
		m.surface.ScrollBy(-viewport / 2)

	case key.Matches(msg, m.keyMap.HalfPageDown):
		m.surface.ScrollBy(viewport / 2)

	case key.Matches(msg, m.keyMap.PageUp):
		m.surface.ScrollBy(-viewport)

	case key.Matches(msg, m.keyMap.PageDown):
		m.surface.ScrollBy(viewport)

	case key.Matches(msg, m.keyMap.Top):
		m.surface.SetScrollTop(0)

	case key.Matches(msg, m.keyMap.Bottom):
		m.surface.SetScrollTop(m.list.TotalHeight())

	case key.Matches(msg, m.keyMap.Grow):
		newCount := min(max(m.list.ItemCount(), 1)*2, constants.MaxItemCount)
		m.list.Update(newCount)
		newM, cmd := m.withToast(fmt.Sprintf("Item count now %d", newCount), style.ToastStyle)
		return newM, tea.Batch(cmd, newM.maybeFrameCmd())

	case key.Matches(msg, m.keyMap.Shrink):
		newCount := m.list.ItemCount() / 2
		m.list.Update(newCount)
		newM, cmd := m.withToast(fmt.Sprintf("Item count now %d", newCount), style.ToastStyle)
		return newM, tea.Batch(cmd, newM.maybeFrameCmd())

	case key.Matches(msg, m.keyMap.Copy):
		index, ok := m.topVisibleIndex()
		if !ok {
			return m.withToast("Nothing to copy", style.ErrorStyle)
		}
		return m, command.CopyContentToClipboardCmd(m.renderer.plainText(index))

	case key.Matches(msg, m.keyMap.Save):
		rendered := m.list.Rendered()
		if rendered.Empty() {
			return m.withToast("Nothing to save", style.ErrorStyle)
		}
		lines := make([]string, 0, rendered.Len())
		for index := rendered.Start; index <= rendered.End; index++ {
			lines = append(lines, m.renderer.plainText(index))
		}
		return m, fileio.GetSaveCommand("", lines)

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
	}

	return m, m.maybeFrameCmd()
}

// topVisibleIndex is the index of the row at the top of the viewport.
func (m Model) topVisibleIndex() (int, bool) {
	count := m.list.ItemCount()
	if count == 0 {
		return 0, false
	}
	index := int(m.surface.ScrollTop() / float64(m.config.RowLines))
	return min(index, count-1), true
}

func (m Model) withToast(msg string, st lipgloss.Style) (Model, tea.Cmd) {
	newToast := toast.New(st.Render(msg))
	m.toast = newToast
	return m, tea.Tick(constants.ToastDuration, func(t time.Time) tea.Msg { return toast.TimeoutMsg{ID: newToast.ID} })
}

// maybeFrameCmd schedules a repaint tick when the scroll throttle has queued
// work, completing the scroll -> throttle -> recompute loop.
func (m Model) maybeFrameCmd() tea.Cmd {
	if !m.surface.HasPendingFrame() {
		return nil
	}
	return func() tea.Msg { return message.FrameMsg{} }
}

func (m Model) topBarView() string {
	title := style.TitleStyle.Render("simple-virtual-list")
	counts := fmt.Sprintf("%d rows, %d rendered", m.list.ItemCount(), m.list.Rendered().Len())
	version := m.config.Version
	return util.JoinWithEqualSpacing(m.width, title, counts, version)
}

func (m Model) footerView() string {
	if m.toast.Visible {
		return m.toast.View()
	}
	total := m.list.TotalHeight()
	bottom := m.surface.ScrollTop() + m.surface.ViewportHeight()
	percentScrolled := 100
	if total > m.surface.ViewportHeight() {
		percentScrolled = min(int(bottom/total*100), 100)
	}
	rendered := m.list.Rendered()
	position := fmt.Sprintf("%d%% [%d,%d]", percentScrolled, rendered.Start, rendered.End)
	return style.FooterStyle.Render(util.JoinWithEqualSpacing(m.width, position, "? for help"))
}
