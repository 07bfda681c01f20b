package driven

import (
	"image"
	"io"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

// ImageEncoder writes rasters in a file container format.
type ImageEncoder interface {
	// Encode writes img to w in the given format.
	Encode(w io.Writer, img image.Image, format domain.ImageFormat, opts EncodeOptions) error

	// Supports reports whether the format can be encoded.
	Supports(format domain.ImageFormat) bool
}

// ImageDecoder reads rasters from any supported container format.
type ImageDecoder interface {
	// Decode reads an image and reports the detected format.
	Decode(r io.Reader) (image.Image, domain.ImageFormat, error)
}

// EncodeOptions tunes container encoders. Zero values select defaults.
type EncodeOptions struct {
	// JPEGQuality is the JPEG quality, 1-100.
	JPEGQuality int
}
