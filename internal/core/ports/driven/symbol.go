package driven

import (
	"image"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

// SymbolEncoder produces QR rasters.
// Implementations must be deterministic for identical input.
type SymbolEncoder interface {
	// Encode renders payload as a QR symbol at the given error correction
	// level, scale pixels per module. Returns an error if the payload does
	// not fit the symbol format.
	Encode(payload string, level domain.ErrorCorrection, scale int) (*domain.EncodedSymbol, error)
}

// SymbolDecoder reads QR payloads from images.
type SymbolDecoder interface {
	// Decode returns the text encoded in the first QR symbol found in img.
	Decode(img image.Image) (string, error)
}
