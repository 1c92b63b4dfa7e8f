package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#E63329")).
			Padding(0, 1).
			Bold(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Bold(true).
			MarginTop(1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 4).
			Align(lipgloss.Center)

	ImpostorCardStyle = CardStyle.
				BorderForeground(lipgloss.Color("#E63329"))

	InnocentCardStyle = CardStyle.
				BorderForeground(lipgloss.Color("#00D264"))

	ImpostorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E63329")).
			Bold(true)

	InnocentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D264")).
			Bold(true)

	SecretStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	TimerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E8E8E8")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1C1C1C")).
			Padding(0, 3).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
