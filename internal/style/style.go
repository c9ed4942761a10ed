package style

import "github.com/charmbracelet/lipgloss/v2"

var (
	Regular     = lipgloss.NewStyle()
	Bold        = Regular.Bold(true)
	TitleStyle  = Bold.Padding(0, 1)
	FooterStyle = Bold
	IndexStyle  = Regular.Foreground(lipgloss.Color("#777777"))
	ToastStyle  = Regular.Foreground(lipgloss.Color("#3FE34B"))
	ErrorStyle  = Regular.Foreground(lipgloss.Color("#FD2C4C"))
	KeyHelpStyle = Bold.Underline(true)
)
