package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

// ScanService reads card payloads back from QR images.
type ScanService interface {
	// Scan decodes the image in r and returns the QR payload.
	Scan(ctx context.Context, r io.Reader) (domain.CardDocument, error)

	// ScanFile decodes the image stored at path.
	ScanFile(ctx context.Context, path string) (domain.CardDocument, error)
}
