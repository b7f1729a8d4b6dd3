// Package styles contains Lip Gloss style definitions for narration output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Semantic colors
	HighlightColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Matches, hits, headlines
	SubtleColor    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#696969"} // Hints, secondary narration
	SuccessColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Demo success states
	ErrorColor     = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Demo failure states

	// Styles rebuilt by Apply; package-level so every demo shares one set.
	Title     = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)
	Subtle    = lipgloss.NewStyle().Foreground(SubtleColor)
	Success   = lipgloss.NewStyle().Foreground(SuccessColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Highlight = lipgloss.NewStyle().Foreground(HighlightColor)
	Category  = lipgloss.NewStyle().Bold(true)
)

// Theme carries color overrides from the config layer.
// It mirrors config.ThemeConfig to avoid a circular import.
type Theme struct {
	Highlight string
	Subtle    string
	Success   string
	Error     string
}

// Apply installs theme colors and rebuilds the package styles.
// When noColor is set the color profile is forced to Ascii, which makes
// every style render as plain text.
func Apply(theme Theme, noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if theme.Highlight != "" {
		HighlightColor = lipgloss.AdaptiveColor{Light: theme.Highlight, Dark: theme.Highlight}
	}
	if theme.Subtle != "" {
		SubtleColor = lipgloss.AdaptiveColor{Light: theme.Subtle, Dark: theme.Subtle}
	}
	if theme.Success != "" {
		SuccessColor = lipgloss.AdaptiveColor{Light: theme.Success, Dark: theme.Success}
	}
	if theme.Error != "" {
		ErrorColor = lipgloss.AdaptiveColor{Light: theme.Error, Dark: theme.Error}
	}

	Title = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)
	Subtle = lipgloss.NewStyle().Foreground(SubtleColor)
	Success = lipgloss.NewStyle().Foreground(SuccessColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	Highlight = lipgloss.NewStyle().Foreground(HighlightColor)
}
