package driving

import (
	"context"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

// Pipeline turns card documents into QR symbols and exports them.
// It holds at most one symbol at a time.
type Pipeline interface {
	// Generate encodes doc and makes it the current symbol.
	// On failure the previously held symbol is kept.
	Generate(ctx context.Context, doc domain.CardDocument) (*domain.EncodedSymbol, error)

	// Export writes the current symbol to destination, choosing the
	// container from its extension.
	Export(ctx context.Context, destination string) (*domain.ExportResult, error)

	// Render encodes the current symbol in format and returns the bytes.
	Render(ctx context.Context, format domain.ImageFormat) ([]byte, error)

	// Reset discards the current symbol.
	Reset()

	// State reports whether a symbol is held.
	State() domain.PipelineState

	// Current returns the held symbol, or nil.
	Current() *domain.EncodedSymbol
}
