// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady      State = "ready"
	StateGenerating State = "generating"
	StateGenerated  State = "generated"
	StatePrompt     State = "prompt"
	StateSaving     State = "saving"
	StateSaved      State = "saved"
	StateError      State = "error"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state and message.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateGenerating:
		return s.styles.Muted.Render("Generating...")
	case StateSaving:
		return s.styles.Muted.Render("Saving...")
	case StateGenerated:
		return s.styles.Success.Render(s.withMessage("QR code generated"))
	case StateSaved:
		return s.styles.Success.Render(s.withMessage("Saved"))
	case StatePrompt:
		return s.styles.Normal.Render("Save as")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady:
		return s.styles.Muted.Render(s.withMessage("Ready"))
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) withMessage(text string) string {
	if s.message == "" {
		return text
	}
	return text + ": " + s.message
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	if s.state == StatePrompt {
		bindings = s.keymap.PromptHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state and clears any message.
func (s *Bar) SetState(state State) {
	s.state = state
	s.message = ""
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetError switches to the error state with err as the message.
func (s *Bar) SetError(err error) {
	s.state = StateError
	s.message = ""
	if err != nil {
		s.message = err.Error()
	}
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
