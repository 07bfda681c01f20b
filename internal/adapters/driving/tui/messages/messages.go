// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

// Mode identifies what the TUI is currently accepting input for.
type Mode int

const (
	// ModeForm is contact field entry.
	ModeForm Mode = iota
	// ModeSavePrompt is destination path entry before an export.
	ModeSavePrompt
	// ModeHelp shows the keybindings.
	ModeHelp
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeForm:
		return "form"
	case ModeSavePrompt:
		return "save_prompt"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// CardGenerated carries the result of serializing and encoding the form.
// Generation identifies the form contents the request was made for; a
// clear starts a new generation.
type CardGenerated struct {
	Generation int
	Document   domain.CardDocument
	Symbol     *domain.EncodedSymbol
	Err        error
}

// SaveRequested asks for the current symbol to be exported to Path.
type SaveRequested struct {
	Path string
}

// CardSaved carries the result of an export.
type CardSaved struct {
	Result *domain.ExportResult
	Err    error
}

// FormCleared signals that the form and pipeline were reset.
type FormCleared struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
