package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/arc/internal/models"
)

// Color constants for the arc theme
const (
	ColorCardBackground = "#1B1530" // Dark purple
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383"
	ColorHelpText      = "240"

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED"
	ColorAccentBright = "#A78BFA"

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)

// statusColor picks the foreground for a status label
func statusColor(s models.Status) lipgloss.Color {
	switch s {
	case models.StatusComplete:
		return lipgloss.Color(ColorSuccess)
	case models.StatusActive:
		return lipgloss.Color(ColorAccentBright)
	case models.StatusHold:
		return lipgloss.Color(ColorWarning)
	case models.StatusDiscarded:
		return lipgloss.Color(ColorDisabledText)
	default:
		return lipgloss.Color(ColorSecondaryText)
	}
}

// statusIcon prefixes a status with a glyph, e.g. "✓ complete"
func statusIcon(s models.Status) string {
	switch s {
	case models.StatusComplete:
		return "✓ " + string(s)
	case models.StatusActive:
		return "▶ " + string(s)
	case models.StatusHold:
		return "‖ " + string(s)
	case models.StatusDiscarded:
		return "✗ " + string(s)
	default:
		return "○ " + string(s)
	}
}
