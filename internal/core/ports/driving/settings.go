package driving

import "github.com/custodia-labs/vcardqr/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetScale updates the pixel size of one QR module.
	SetScale(scale int) error

	// SetJPEGQuality updates the JPEG encoder quality.
	SetJPEGQuality(quality int) error

	// SetDirectory updates the default output directory.
	SetDirectory(dir string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
