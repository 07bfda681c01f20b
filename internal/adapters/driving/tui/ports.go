// Package tui provides an interactive terminal user interface for vcardqr.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/vcardqr/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Card serializes the form into a vCard document.
	Card driving.CardService

	// Pipeline generates and exports the QR symbol.
	Pipeline driving.Pipeline

	// Settings supplies the default output directory. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Card == nil {
		return ErrMissingCardService
	}
	if p.Pipeline == nil {
		return ErrMissingPipeline
	}
	return nil
}
