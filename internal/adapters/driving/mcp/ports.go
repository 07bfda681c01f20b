package mcp

import (
	"github.com/custodia-labs/vcardqr/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Card serializes contacts into vCard text.
	Card driving.CardService

	// Pipeline generates, renders and exports QR symbols.
	Pipeline driving.Pipeline
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Card == nil {
		return ErrMissingCardService
	}
	if p.Pipeline == nil {
		return ErrMissingPipeline
	}
	return nil
}
