package qrcode

import (
	"errors"
	"image"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"

	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.SymbolDecoder = (*Decoder)(nil)

// ErrQRDecode is returned when no QR symbol can be read.
var ErrQRDecode = errors.New("qrcode: failed to decode")

// Decoder reads QR payloads from rasters.
type Decoder struct {
	hints map[gozxing.DecodeHintType]interface{}
}

// NewDecoder creates a decoder that spends extra effort locating the symbol.
func NewDecoder() *Decoder {
	return &Decoder{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Decode returns the text of the QR symbol in img.
func (d *Decoder) Decode(img image.Image) (string, error) {
	if img == nil {
		return "", ErrQRDecode
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", errors.Join(ErrQRDecode, err)
	}

	result, err := zxqr.NewQRCodeReader().Decode(bmp, d.hints)
	if err != nil {
		return "", errors.Join(ErrQRDecode, err)
	}

	return result.GetText(), nil
}
