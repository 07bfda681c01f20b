package domain

import "image"

// ErrorCorrection is the QR redundancy tier.
type ErrorCorrection int

// Available error correction levels.
const (
	// ErrorCorrectionLow recovers about 7% of damaged modules.
	ErrorCorrectionLow ErrorCorrection = iota
	// ErrorCorrectionMedium recovers about 15%.
	ErrorCorrectionMedium
	// ErrorCorrectionQuartile recovers about 25% (level Q).
	ErrorCorrectionQuartile
	// ErrorCorrectionHigh recovers about 30%.
	ErrorCorrectionHigh
)

// String returns the single-letter QR level name.
func (l ErrorCorrection) String() string {
	switch l {
	case ErrorCorrectionLow:
		return "L"
	case ErrorCorrectionMedium:
		return "M"
	case ErrorCorrectionQuartile:
		return "Q"
	case ErrorCorrectionHigh:
		return "H"
	default:
		return "?"
	}
}

// CardErrorCorrection is the fixed level used for every contact card.
const CardErrorCorrection = ErrorCorrectionQuartile

// EncodedSymbol is a QR raster produced for a CardDocument.
// It is never mutated after creation.
type EncodedSymbol struct {
	// Payload is the text the symbol encodes.
	Payload CardDocument

	// Image is the rendered raster, Scale pixels per module.
	Image image.Image

	// Modules is the module grid including the quiet zone; true is dark.
	Modules [][]bool

	// Level is the error correction level used.
	Level ErrorCorrection

	// Scale is the pixel size of one module.
	Scale int
}

// Size returns the width of the module grid.
func (s *EncodedSymbol) Size() int {
	return len(s.Modules)
}

// PipelineState is the state of the encode-export pipeline.
type PipelineState int

const (
	// StateEmpty means nothing has been generated (or it was reset).
	StateEmpty PipelineState = iota
	// StateGenerated means a symbol is held and may be exported.
	StateGenerated
)

// String returns the string representation of the state.
func (s PipelineState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateGenerated:
		return "generated"
	default:
		return "unknown"
	}
}

// CanExport reports whether export is permitted in this state.
func (s PipelineState) CanExport() bool {
	return s == StateGenerated
}

// ExportResult describes a completed export.
type ExportResult struct {
	// Path is the destination written.
	Path string

	// Format is the container the image was encoded in.
	Format ImageFormat

	// Bytes is the number of bytes written.
	Bytes int64
}
