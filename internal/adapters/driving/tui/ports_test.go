package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driving"
)

// MockCardService implements driving.CardService for testing.
type MockCardService struct {
	SerializeFunc func(record domain.ContactRecord) (domain.CardDocument, error)
	ValidateFunc  func(record domain.ContactRecord) error
	ParseFunc     func(doc domain.CardDocument) (*domain.ContactRecord, error)
}

func (m *MockCardService) Serialize(record domain.ContactRecord) (domain.CardDocument, error) {
	if m.SerializeFunc != nil {
		return m.SerializeFunc(record)
	}
	return domain.CardDocument("BEGIN:VCARD\r\nEND:VCARD\r\n"), nil
}

func (m *MockCardService) Validate(record domain.ContactRecord) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(record)
	}
	return nil
}

func (m *MockCardService) Parse(doc domain.CardDocument) (*domain.ContactRecord, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(doc)
	}
	return &domain.ContactRecord{}, nil
}

// MockPipeline implements driving.Pipeline for testing.
type MockPipeline struct {
	GenerateFunc func(ctx context.Context, doc domain.CardDocument) (*domain.EncodedSymbol, error)
	ExportFunc   func(ctx context.Context, destination string) (*domain.ExportResult, error)
	RenderFunc   func(ctx context.Context, format domain.ImageFormat) ([]byte, error)

	current    *domain.EncodedSymbol
	resetCalls int
}

func (m *MockPipeline) Generate(ctx context.Context, doc domain.CardDocument) (*domain.EncodedSymbol, error) {
	if m.GenerateFunc != nil {
		symbol, err := m.GenerateFunc(ctx, doc)
		if err == nil {
			m.current = symbol
		}
		return symbol, err
	}
	m.current = &domain.EncodedSymbol{Payload: doc, Modules: [][]bool{{true}}}
	return m.current, nil
}

func (m *MockPipeline) Export(ctx context.Context, destination string) (*domain.ExportResult, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, destination)
	}
	return &domain.ExportResult{Path: destination, Format: domain.FormatFromPath(destination)}, nil
}

func (m *MockPipeline) Render(ctx context.Context, format domain.ImageFormat) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, format)
	}
	return nil, nil
}

func (m *MockPipeline) Reset() {
	m.resetCalls++
	m.current = nil
}

func (m *MockPipeline) State() domain.PipelineState {
	if m.current == nil {
		return domain.StateEmpty
	}
	return domain.StateGenerated
}

func (m *MockPipeline) Current() *domain.EncodedSymbol {
	return m.current
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings *domain.AppSettings
	GetErr   error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Settings != nil {
		return m.Settings, nil
	}
	defaults := domain.DefaultAppSettings()
	return &defaults, nil
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	m.Settings = settings
	return nil
}

func (m *MockSettingsService) SetScale(int) error { return nil }

func (m *MockSettingsService) SetJPEGQuality(int) error { return nil }

func (m *MockSettingsService) SetDirectory(string) error { return nil }

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

var (
	_ driving.CardService     = (*MockCardService)(nil)
	_ driving.Pipeline        = (*MockPipeline)(nil)
	_ driving.SettingsService = (*MockSettingsService)(nil)
)

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		err   error
	}{
		{"nil ports", nil, ErrInvalidPorts},
		{"missing card service", &Ports{Pipeline: &MockPipeline{}}, ErrMissingCardService},
		{"missing pipeline", &Ports{Card: &MockCardService{}}, ErrMissingPipeline},
		{"settings optional", &Ports{Card: &MockCardService{}, Pipeline: &MockPipeline{}}, nil},
		{
			"all set",
			&Ports{Card: &MockCardService{}, Pipeline: &MockPipeline{}, Settings: &MockSettingsService{}},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
