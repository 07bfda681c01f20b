package tui

import "errors"

// ErrMissingCardService is returned when the card service is not provided.
var ErrMissingCardService = errors.New("tui: card service is required")

// ErrMissingPipeline is returned when the pipeline is not provided.
var ErrMissingPipeline = errors.New("tui: pipeline is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
