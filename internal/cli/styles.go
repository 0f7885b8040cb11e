package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#fe8019")
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
)

var (
	styleTitle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleSection = lipgloss.NewStyle().Foreground(colorFg).Bold(true).Underline(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleOK      = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarn    = lipgloss.NewStyle().Foreground(colorYellow)
	styleErr     = lipgloss.NewStyle().Foreground(colorRed)
	styleEntry   = lipgloss.NewStyle().PaddingLeft(2)
)
