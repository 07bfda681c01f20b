package services

import (
	"fmt"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputScale       = "output.scale"
	keyOutputJPEGQuality = "output.jpeg_quality"
	keyOutputDirectory   = "output.directory"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or out-of-range values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Scale:       s.getIntInRange(keyOutputScale, domain.MinScale, domain.MaxScale, defaults.Output.Scale),
			JPEGQuality: s.getIntInRange(keyOutputJPEGQuality, domain.MinJPEGQuality, domain.MaxJPEGQuality, defaults.Output.JPEGQuality),
			Directory:   s.getString(keyOutputDirectory, defaults.Output.Directory),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if err := settings.Output.Validate(); err != nil {
		return fmt.Errorf("save output settings: %w", err)
	}

	if err := s.configStore.Set(keyOutputScale, settings.Output.Scale); err != nil {
		return fmt.Errorf("save output scale: %w", err)
	}
	if err := s.configStore.Set(keyOutputJPEGQuality, settings.Output.JPEGQuality); err != nil {
		return fmt.Errorf("save output jpeg_quality: %w", err)
	}
	if err := s.configStore.Set(keyOutputDirectory, settings.Output.Directory); err != nil {
		return fmt.Errorf("save output directory: %w", err)
	}

	return nil
}

// SetScale updates the pixel size of one QR module.
func (s *SettingsService) SetScale(scale int) error {
	if scale < domain.MinScale || scale > domain.MaxScale {
		return fmt.Errorf("%w: scale must be between %d and %d, got %d",
			domain.ErrInvalidInput, domain.MinScale, domain.MaxScale, scale)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.Scale = scale
	return s.Save(settings)
}

// SetJPEGQuality updates the JPEG encoder quality.
func (s *SettingsService) SetJPEGQuality(quality int) error {
	if quality < domain.MinJPEGQuality || quality > domain.MaxJPEGQuality {
		return fmt.Errorf("%w: jpeg quality must be between %d and %d, got %d",
			domain.ErrInvalidInput, domain.MinJPEGQuality, domain.MaxJPEGQuality, quality)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.JPEGQuality = quality
	return s.Save(settings)
}

// SetDirectory updates the default output directory.
func (s *SettingsService) SetDirectory(dir string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.Directory = dir
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getIntInRange(key string, lo, hi, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	v := s.configStore.GetInt(key)
	if v < lo || v > hi {
		return defaultVal
	}
	return v
}
