package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingCardService,
		ErrMissingPipeline,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingCardService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingCardService.Error(), "card service")
}

func TestErrMissingPipeline_Message(t *testing.T) {
	assert.Contains(t, ErrMissingPipeline.Error(), "pipeline")
}
