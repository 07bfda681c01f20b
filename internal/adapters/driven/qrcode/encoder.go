package qrcode

import (
	"errors"
	"fmt"

	qrgen "github.com/skip2/go-qrcode"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
)

// Ensure Encoder implements the interface.
var _ driven.SymbolEncoder = (*Encoder)(nil)

// Encoder errors.
var (
	ErrEmptyPayload = errors.New("qrcode: empty payload")
	ErrInvalidScale = errors.New("qrcode: scale must be positive")
	ErrQREncode     = errors.New("qrcode: failed to encode")
)

// Encoder produces QR rasters with a 4-module quiet zone.
type Encoder struct{}

// NewEncoder creates a new QR encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders payload at level with scale pixels per module.
// The symbol version is the smallest that fits the payload.
func (e *Encoder) Encode(payload string, level domain.ErrorCorrection, scale int) (*domain.EncodedSymbol, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}

	qr, err := qrgen.New(payload, recoveryLevel(level))
	if err != nil {
		return nil, errors.Join(ErrQREncode, err)
	}

	// A negative size is taken as pixels per module.
	img := qr.Image(-scale)

	return &domain.EncodedSymbol{
		Payload: domain.CardDocument(payload),
		Image:   img,
		Modules: qr.Bitmap(),
		Level:   level,
		Scale:   scale,
	}, nil
}

// recoveryLevel maps a domain level to the go-qrcode constant.
// go-qrcode names the four tiers Low, Medium, High and Highest.
func recoveryLevel(level domain.ErrorCorrection) qrgen.RecoveryLevel {
	switch level {
	case domain.ErrorCorrectionLow:
		return qrgen.Low
	case domain.ErrorCorrectionMedium:
		return qrgen.Medium
	case domain.ErrorCorrectionHigh:
		return qrgen.Highest
	default:
		return qrgen.High
	}
}
