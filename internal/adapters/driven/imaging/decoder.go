package imaging

import (
	"errors"
	"fmt"
	"image"
	"io"

	// Registered for image.Decode.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.ImageDecoder = (*Decoder)(nil)

// ErrUnknownFormat is returned when the input is not a supported image.
var ErrUnknownFormat = errors.New("imaging: unknown image format")

// Decoder reads PNG, JPEG and BMP rasters.
type Decoder struct{}

// NewDecoder creates a new image decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads an image and reports its container format.
func (d *Decoder) Decode(r io.Reader) (image.Image, domain.ImageFormat, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnknownFormat
		}
		return nil, "", fmt.Errorf("decode %s: %w", name, err)
	}

	format, ok := domain.ParseImageFormat(name)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	return img, format, nil
}
