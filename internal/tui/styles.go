package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary    = lipgloss.Color("39")
	ColorSuccess    = lipgloss.Color("42")
	ColorDanger     = lipgloss.Color("196")
	ColorForeground = lipgloss.Color("252")
	ColorMuted      = lipgloss.Color("243")
	ColorBorder     = lipgloss.Color("238")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Width(26)

	FocusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Width(26)

	ToggleOnStyle  = lipgloss.NewStyle().Foreground(ColorSuccess)
	ToggleOffStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Width(26)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)
