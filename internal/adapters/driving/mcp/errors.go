// Package mcp provides an MCP (Model Context Protocol) server adapter for vcardqr.
// It lets AI assistants build contact cards and QR codes.
package mcp

import "errors"

var (
	// ErrMissingCardService is returned when the card service is not provided.
	ErrMissingCardService = errors.New("mcp: card service is required")

	// ErrMissingPipeline is returned when the pipeline is not provided.
	ErrMissingPipeline = errors.New("mcp: pipeline is required")
)
