// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour, used for the focused field.
	Primary lipgloss.Color

	// Secondary is the colour of section headers.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for hints and placeholders.
	Muted lipgloss.Color

	// Success indicates a generated or saved card.
	Success lipgloss.Color

	// Error indicates validation and export failures.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// QRDark and QRLight are the module colours of the preview.
	QRDark  lipgloss.Color
	QRLight lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"), // Blue
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#E5E7EB"), // Light gray
		Muted:      lipgloss.Color("#6B7280"), // Medium gray
		Success:    lipgloss.Color("#22C55E"), // Green
		Error:      lipgloss.Color("#EF4444"), // Red
		Border:     lipgloss.Color("#374151"), // Border gray
		QRDark:     lipgloss.Color("#000000"),
		QRLight:    lipgloss.Color("#FFFFFF"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the window header.
	Title lipgloss.Style

	// Section style for form group headers.
	Section lipgloss.Style

	// Label style for field labels.
	Label lipgloss.Style

	// FocusedLabel style for the label of the focused field.
	FocusedLabel lipgloss.Style

	// Required style for the required-field marker.
	Required lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Panel style for the form and preview containers.
	Panel lipgloss.Style

	// QR style for the rendered symbol.
	QR lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary).
			MarginTop(1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Width(16),

		FocusedLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Width(16),

		Required: lipgloss.NewStyle().
			Foreground(theme.Error),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		QR: lipgloss.NewStyle().
			Foreground(theme.QRLight).
			Background(theme.QRDark),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#111827")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
