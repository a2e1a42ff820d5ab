package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the cashier screen.
type Styles struct {
	Title      lipgloss.Style
	Pane       lipgloss.Style
	ActivePane lipgloss.Style
	CartLine   lipgloss.Style
	Selected   lipgloss.Style
	PendingTag lipgloss.Style
	Total      lipgloss.Style
	ToastOK    lipgloss.Style
	ToastErr   lipgloss.Style
	Help       lipgloss.Style
	Overlay    lipgloss.Style
}

func DefaultStyles() Styles {
	yellow := lipgloss.Color("11")
	dim := lipgloss.Color("240")
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(yellow),
		Pane:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(0, 1),
		ActivePane: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(yellow).Padding(0, 1),
		CartLine:   lipgloss.NewStyle(),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(yellow),
		PendingTag: lipgloss.NewStyle().Faint(true),
		Total:      lipgloss.NewStyle().Bold(true),
		ToastOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		ToastErr:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:       lipgloss.NewStyle().Faint(true),
		Overlay:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(yellow).Padding(1, 3),
	}
}
