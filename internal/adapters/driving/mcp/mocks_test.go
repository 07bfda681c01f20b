package mcp

import (
	"context"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driving"
)

var (
	_ driving.CardService = (*mockCardService)(nil)
	_ driving.Pipeline    = (*mockPipeline)(nil)
)

const testCard = "BEGIN:VCARD\r\nVERSION:3.0\r\nN:Doe;Jane;;;\r\nFN:Jane Doe\r\nEND:VCARD\r\n"

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// mockCardService is a mock implementation of driving.CardService.
type mockCardService struct {
	err  error
	last domain.ContactRecord
}

func (m *mockCardService) Serialize(record domain.ContactRecord) (domain.CardDocument, error) {
	m.last = record
	if m.err != nil {
		return "", m.err
	}
	return testCard, nil
}

func (m *mockCardService) Validate(_ domain.ContactRecord) error {
	return m.err
}

func (m *mockCardService) Parse(_ domain.CardDocument) (*domain.ContactRecord, error) {
	return &m.last, m.err
}

// mockPipeline is a mock implementation of driving.Pipeline.
type mockPipeline struct {
	generateErr error
	renderErr   error
	exportErr   error

	current      *domain.EncodedSymbol
	exportedTo   string
	renderFormat domain.ImageFormat
}

func (m *mockPipeline) Generate(_ context.Context, doc domain.CardDocument) (*domain.EncodedSymbol, error) {
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	modules := make([][]bool, 29)
	for i := range modules {
		modules[i] = make([]bool, 29)
	}
	m.current = &domain.EncodedSymbol{Payload: doc, Modules: modules, Level: domain.CardErrorCorrection}
	return m.current, nil
}

func (m *mockPipeline) Export(_ context.Context, destination string) (*domain.ExportResult, error) {
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	m.exportedTo = destination
	return &domain.ExportResult{
		Path:   destination,
		Format: domain.FormatFromPath(destination),
		Bytes:  int64(len(pngMagic)),
	}, nil
}

func (m *mockPipeline) Render(_ context.Context, format domain.ImageFormat) ([]byte, error) {
	m.renderFormat = format
	if m.renderErr != nil {
		return nil, m.renderErr
	}
	return pngMagic, nil
}

func (m *mockPipeline) Reset() {
	m.current = nil
}

func (m *mockPipeline) State() domain.PipelineState {
	if m.current == nil {
		return domain.StateEmpty
	}
	return domain.StateGenerated
}

func (m *mockPipeline) Current() *domain.EncodedSymbol {
	return m.current
}
