package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Error        lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	ButtonOff    lipgloss.Style
	Accepted     lipgloss.Style
	Rejected     lipgloss.Style
	Box          lipgloss.Style
}

func defaultStyles() styles {
	button := lipgloss.NewStyle().Padding(0, 3).MarginTop(1)
	return styles{
		Title:        lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Button:       button.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")),
		ButtonActive: button.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("205")).Bold(true),
		ButtonOff:    button.Foreground(lipgloss.Color("245")).Background(lipgloss.Color("237")),
		Accepted:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).MarginTop(1),
		Rejected:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).MarginTop(1),
		Box:          lipgloss.NewStyle().Padding(1, 2),
	}
}
