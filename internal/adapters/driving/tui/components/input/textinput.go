// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/styles"
)

const (
	defaultWidth = 40
	charLimit    = 512
)

// FieldInput wraps a bubbles textinput with a label and a required marker.
type FieldInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	required  bool
	width     int
}

// NewFieldInput creates a new labeled input. It starts blurred.
func NewFieldInput(s *styles.Styles, label string, required bool) *FieldInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = charLimit
	ti.Width = defaultWidth
	if required {
		ti.Placeholder = "required"
	}

	return &FieldInput{
		textinput: ti,
		styles:    s,
		label:     label,
		required:  required,
		width:     defaultWidth,
	}
}

// Init initialises the input.
func (f *FieldInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *FieldInput) Update(msg tea.Msg) (*FieldInput, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label and the input on one line.
func (f *FieldInput) View() string {
	labelStyle := f.styles.Label
	if f.textinput.Focused() {
		labelStyle = f.styles.FocusedLabel
	}

	label := f.label
	if f.required {
		label += f.styles.Required.Render("*")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), f.textinput.View())
}

// Label returns the field label.
func (f *FieldInput) Label() string {
	return f.label
}

// Required reports whether the field is required.
func (f *FieldInput) Required() bool {
	return f.required
}

// Value returns the current input value.
func (f *FieldInput) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *FieldInput) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (f *FieldInput) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *FieldInput) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *FieldInput) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the total width including the label.
func (f *FieldInput) SetWidth(width int) {
	f.width = width
	inputWidth := width - f.styles.Label.GetWidth() - 1
	if inputWidth < 10 {
		inputWidth = 10
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *FieldInput) Width() int {
	return f.width
}

// Reset clears the input.
func (f *FieldInput) Reset() {
	f.textinput.Reset()
}
