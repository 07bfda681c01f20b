package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driving"
	"github.com/custodia-labs/vcardqr/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.ScanService = (*ScanService)(nil)

// ScanService reads card payloads back from QR images.
type ScanService struct {
	images  driven.ImageDecoder
	symbols driven.SymbolDecoder
}

// NewScanService creates a new scan service.
func NewScanService(images driven.ImageDecoder, symbols driven.SymbolDecoder) *ScanService {
	return &ScanService{
		images:  images,
		symbols: symbols,
	}
}

// Scan decodes the image in r and returns the QR payload.
func (s *ScanService) Scan(ctx context.Context, r io.Reader) (domain.CardDocument, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	if s.images == nil || s.symbols == nil {
		return "", fmt.Errorf("%w: scanner not configured", domain.ErrDecode)
	}

	img, format, err := s.images.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: read image: %w", domain.ErrDecode, err)
	}
	logger.Debug("Decoded %s image %v", format, img.Bounds().Size())

	text, err := s.symbols.Decode(img)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	return domain.CardDocument(text), nil
}

// ScanFile decodes the image stored at path.
func (s *ScanService) ScanFile(ctx context.Context, path string) (domain.CardDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	defer f.Close()

	return s.Scan(ctx, f)
}
