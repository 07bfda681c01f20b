package services

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driving"
)

// mockSymbolEncoder is a mock implementation of driven.SymbolEncoder.
type mockSymbolEncoder struct {
	err       error
	nilResult bool
	calls     int
	lastLevel domain.ErrorCorrection
	lastScale int
}

func (m *mockSymbolEncoder) Encode(payload string, level domain.ErrorCorrection, scale int) (*domain.EncodedSymbol, error) {
	m.calls++
	m.lastLevel = level
	m.lastScale = scale
	if m.err != nil {
		return nil, m.err
	}
	if m.nilResult {
		return nil, nil
	}

	const modules = 21
	img := image.NewGray(image.Rect(0, 0, modules*scale, modules*scale))
	grid := make([][]bool, modules)
	for y := range grid {
		grid[y] = make([]bool, modules)
		for x := range grid[y] {
			grid[y][x] = (x+y)%2 == 0
			if grid[y][x] {
				img.SetGray(x*scale, y*scale, color.Gray{})
			}
		}
	}
	return &domain.EncodedSymbol{
		Payload: domain.CardDocument(payload),
		Image:   img,
		Modules: grid,
		Level:   level,
		Scale:   scale,
	}, nil
}

// mockImageEncoder writes the format name so tests can see which
// container was selected.
type mockImageEncoder struct {
	err         error
	unsupported domain.ImageFormat
	lastFormat  domain.ImageFormat
	lastOpts    driven.EncodeOptions
}

func (m *mockImageEncoder) Encode(w io.Writer, _ image.Image, format domain.ImageFormat, opts driven.EncodeOptions) error {
	m.lastFormat = format
	m.lastOpts = opts
	if m.err != nil {
		_, _ = w.Write([]byte("partial"))
		return m.err
	}
	_, err := w.Write([]byte(format.String()))
	return err
}

func (m *mockImageEncoder) Supports(format domain.ImageFormat) bool {
	return format.IsValid() && format != m.unsupported
}

// mockImageDecoder is a mock implementation of driven.ImageDecoder.
type mockImageDecoder struct {
	err error
}

func (m *mockImageDecoder) Decode(r io.Reader) (image.Image, domain.ImageFormat, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return nil, "", err
	}
	return image.NewGray(image.Rect(0, 0, 10, 10)), domain.FormatPNG, nil
}

// mockSymbolDecoder is a mock implementation of driven.SymbolDecoder.
type mockSymbolDecoder struct {
	text string
	err  error
}

func (m *mockSymbolDecoder) Decode(_ image.Image) (string, error) {
	return m.text, m.err
}

// failingSettings is a SettingsService whose Get always fails.
type failingSettings struct {
	driving.SettingsService
}

func (failingSettings) Get() (*domain.AppSettings, error) {
	return nil, errors.New("config unreadable")
}
