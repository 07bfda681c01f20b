package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
)

// Ensure Encoder implements the interface.
var _ driven.ImageEncoder = (*Encoder)(nil)

// ErrUnsupportedFormat is returned for formats with no encoder.
var ErrUnsupportedFormat = errors.New("imaging: unsupported format")

// DefaultJPEGQuality is used when no quality is configured.
const DefaultJPEGQuality = 95

// Encoder writes rasters as PNG, JPEG or BMP.
type Encoder struct {
	png png.Encoder
}

// NewEncoder creates a new image encoder.
func NewEncoder() *Encoder {
	return &Encoder{
		png: png.Encoder{CompressionLevel: png.BestCompression},
	}
}

// Encode writes img to w in format.
func (e *Encoder) Encode(w io.Writer, img image.Image, format domain.ImageFormat, opts driven.EncodeOptions) error {
	if img == nil {
		return errors.New("imaging: nil image")
	}

	switch format {
	case domain.FormatPNG:
		return e.png.Encode(w, img)
	case domain.FormatJPEG:
		quality := opts.JPEGQuality
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case domain.FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Supports reports whether format can be encoded.
func (e *Encoder) Supports(format domain.ImageFormat) bool {
	return format.IsValid()
}
