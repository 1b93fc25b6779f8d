package tui

import "github.com/charmbracelet/lipgloss"

var (
	// HeaderStyle styles the title line.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// ActiveStyle highlights the active version in list output.
	ActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	detailStyle = lipgloss.NewStyle().Faint(true)

	stageStyles = map[string]lipgloss.Style{
		"done": lipgloss.NewStyle().Foreground(lipgloss.Color("2")),

		"resolving":   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"downloading": lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"extracting":  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),

		"pending": lipgloss.NewStyle().Faint(true),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// StageStyle returns the lipgloss style for the given stage name.
func StageStyle(stage string) lipgloss.Style {
	if s, ok := stageStyles[stage]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
