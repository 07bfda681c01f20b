package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driving"
	"github.com/custodia-labs/vcardqr/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.Pipeline = (*Pipeline)(nil)

// ErrMissingPort is returned when a required driven port is nil.
var ErrMissingPort = errors.New("pipeline: required port is nil")

// Pipeline encodes card documents as QR symbols and exports the current
// symbol. The symbol slot is replaced wholesale, never mutated.
type Pipeline struct {
	encoder  driven.SymbolEncoder
	images   driven.ImageEncoder
	sink     driven.Sink
	settings driving.SettingsService

	current atomic.Pointer[domain.EncodedSymbol]
}

// NewPipeline creates a new encode-export pipeline.
// settings may be nil, in which case the default output settings apply.
func NewPipeline(
	encoder driven.SymbolEncoder,
	images driven.ImageEncoder,
	sink driven.Sink,
	settings driving.SettingsService,
) (*Pipeline, error) {
	if encoder == nil || images == nil || sink == nil {
		return nil, ErrMissingPort
	}
	return &Pipeline{
		encoder:  encoder,
		images:   images,
		sink:     sink,
		settings: settings,
	}, nil
}

// Generate encodes doc at the fixed card error correction level and makes
// the result the current symbol. A failure keeps the previous symbol.
func (p *Pipeline) Generate(ctx context.Context, doc domain.CardDocument) (*domain.EncodedSymbol, error) {
	logger.Section("Generate")
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncoding, err)
	}
	if doc.IsEmpty() {
		return nil, fmt.Errorf("%w: empty document", domain.ErrEncoding)
	}

	defer logger.Timed("Generate")()
	out := p.output()
	logger.Debug("Payload: %d bytes, level %s, scale %d", len(doc), domain.CardErrorCorrection, out.Scale)

	symbol, err := p.encoder.Encode(doc.String(), domain.CardErrorCorrection, out.Scale)
	if err != nil {
		logger.Warn("Encoder rejected payload: %v", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrEncoding, err)
	}
	if symbol == nil || symbol.Image == nil || symbol.Image.Bounds().Empty() {
		return nil, fmt.Errorf("%w: encoder returned an empty raster", domain.ErrEncoding)
	}

	p.current.Store(symbol)
	logger.Info("Generated %dx%d symbol", symbol.Size(), symbol.Size())
	return symbol, nil
}

// Export writes the current symbol to destination. The container is chosen
// from the destination's extension, defaulting to PNG.
func (p *Pipeline) Export(ctx context.Context, destination string) (*domain.ExportResult, error) {
	logger.Section("Export")
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExport, err)
	}

	symbol := p.current.Load()
	if symbol == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExport, domain.ErrNothingGenerated)
	}
	if destination == "" {
		return nil, fmt.Errorf("%w: empty destination", domain.ErrExport)
	}

	defer logger.Timed("Export")()
	format := domain.FormatFromPath(destination)
	logger.Debug("Destination: %s (%s)", destination, format)

	w, err := p.sink.Create(destination)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrExport, destination, err)
	}
	// Abort after a successful Commit is a no-op.
	defer w.Abort() //nolint:errcheck

	cw := &countingWriter{w: w}
	if err := p.encodeImage(cw, symbol, format, p.output()); err != nil {
		return nil, err
	}
	if err := w.Commit(); err != nil {
		return nil, fmt.Errorf("%w: write %s: %w", domain.ErrExport, destination, err)
	}

	logger.Info("Exported %d bytes to %s", cw.n, destination)
	return &domain.ExportResult{
		Path:   destination,
		Format: format,
		Bytes:  cw.n,
	}, nil
}

// Render encodes the current symbol in format and returns the bytes.
func (p *Pipeline) Render(ctx context.Context, format domain.ImageFormat) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExport, err)
	}

	symbol := p.current.Load()
	if symbol == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExport, domain.ErrNothingGenerated)
	}
	if !format.IsValid() {
		format = domain.FormatPNG
	}

	var buf bytes.Buffer
	if err := p.encodeImage(&buf, symbol, format, p.output()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Reset discards the current symbol.
func (p *Pipeline) Reset() {
	p.current.Store(nil)
	logger.Debug("Pipeline reset")
}

// State reports whether a symbol is held.
func (p *Pipeline) State() domain.PipelineState {
	if p.current.Load() == nil {
		return domain.StateEmpty
	}
	return domain.StateGenerated
}

// Current returns the held symbol, or nil.
func (p *Pipeline) Current() *domain.EncodedSymbol {
	return p.current.Load()
}

func (p *Pipeline) encodeImage(
	w io.Writer,
	symbol *domain.EncodedSymbol,
	format domain.ImageFormat,
	out domain.OutputSettings,
) error {
	if !p.images.Supports(format) {
		return fmt.Errorf("%w: unsupported format %s", domain.ErrExport, format)
	}
	opts := driven.EncodeOptions{JPEGQuality: out.JPEGQuality}
	if err := p.images.Encode(w, symbol.Image, format, opts); err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrExport, format, err)
	}
	return nil
}

// output returns the configured output settings, falling back to defaults
// when settings are unavailable or out of range.
func (p *Pipeline) output() domain.OutputSettings {
	defaults := domain.DefaultAppSettings().Output
	if p.settings == nil {
		return defaults
	}
	settings, err := p.settings.Get()
	if err != nil || settings == nil {
		logger.Warn("Using default output settings: %v", err)
		return defaults
	}
	if err := settings.Output.Validate(); err != nil {
		logger.Warn("Ignoring out-of-range output settings: %+v", settings.Output)
		return defaults
	}
	return settings.Output
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
