package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrValidation", ErrValidation},
		{"ErrEncoding", ErrEncoding},
		{"ErrExport", ErrExport},
		{"ErrNothingGenerated", ErrNothingGenerated},
		{"ErrDecode", ErrDecode},
		{"ErrInvalidInput", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Distinct tests that the three caller-facing kinds never match each other
func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrValidation, ErrEncoding))
	assert.False(t, errors.Is(ErrEncoding, ErrExport))
	assert.False(t, errors.Is(ErrExport, ErrValidation))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: []string{"first_name", "last_name"}}
	assert.Equal(t, "validation failed: required field(s) blank: first_name, last_name", err.Error())

	empty := &ValidationError{}
	assert.Equal(t, "validation failed", empty.Error())
}

func TestValidationError_Unwrap(t *testing.T) {
	var err error = &ValidationError{Fields: []string{"first_name"}}
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrEncoding))

	wrapped := fmt.Errorf("serialize: %w", err)
	var target *ValidationError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, []string{"first_name"}, target.Fields)
}
