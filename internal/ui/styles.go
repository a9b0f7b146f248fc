package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/tien-len/internal/game/card"
)

// Icon constants
const (
	TurnIcon   = "👉"
	PlayerIcon = "🧑"
	WinnerIcon = "🏆"
)

// Lipgloss Styles
var (
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
	redStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	blackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	currentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	promptStyle   = lipgloss.NewStyle().MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// cardStyle 红色花色和大王用红色，其余黑色
func cardStyle(c card.Card, selected bool) lipgloss.Style {
	if selected {
		return selectedStyle
	}
	if c.Color == card.Red {
		return redStyle
	}
	return blackStyle
}
