package domain

import (
	"errors"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrValidation indicates a contact is missing a required field.
	// The caller should re-prompt for the missing values.
	ErrValidation = errors.New("validation failed")

	// ErrEncoding indicates a card could not be turned into a QR symbol,
	// typically because the payload is too large for the symbol format.
	ErrEncoding = errors.New("encoding failed")

	// ErrExport indicates the current symbol could not be written out.
	ErrExport = errors.New("export failed")

	// ErrNothingGenerated indicates export was requested before any symbol
	// was generated, or after a reset.
	ErrNothingGenerated = errors.New("no QR code has been generated")

	// ErrDecode indicates an image did not contain a readable QR symbol.
	ErrDecode = errors.New("decode failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError lists the required contact fields that were blank.
type ValidationError struct {
	Fields []string
}

// Error implements error.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": required field(s) blank: " + strings.Join(e.Fields, ", ")
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
