package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	// Progress line
	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	Counter = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	FilePath = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Summary table
	TagName = lipgloss.NewStyle().
		Foreground(Secondary).
		Width(6)

	TagCount = lipgloss.NewStyle().
			Align(lipgloss.Right).
			Width(10)

	Total = lipgloss.NewStyle().
		Bold(true)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
