package main

import (
	"github.com/charmbracelet/lipgloss"

	"tugasku/internal/model"
	"tugasku/pkg/toast"
)

// Color palette
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A52E0", Dark: "#6C63FF"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#666666"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1E9E57", Dark: "#2ECC71"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#C87F0A", Dark: "#F39C12"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#E74C3C"}
	colorFg      = lipgloss.AdaptiveColor{Light: "#1A1B26", Dark: "#C0CAF5"}
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	botStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
)

func applyTheme(theme model.Theme) {
	lipgloss.SetHasDarkBackground(theme == model.ThemeDark)
}

func toastStyle(level toast.Level) lipgloss.Style {
	switch level {
	case toast.LevelSuccess:
		return successStyle
	case toast.LevelError:
		return errorStyle.Bold(true)
	}
	return subtitleStyle
}

func priorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return errorStyle
	case model.PriorityLow:
		return subtitleStyle
	}
	return warningStyle
}

var priorityLabels = map[model.Priority]string{
	model.PriorityHigh:   "Tinggi",
	model.PriorityMedium: "Sedang",
	model.PriorityLow:    "Rendah",
}
