package domain

// Limits for output settings.
const (
	MinScale       = 1
	MaxScale       = 64
	MinJPEGQuality = 1
	MaxJPEGQuality = 100
)

// OutputSettings holds image output configuration.
type OutputSettings struct {
	// Scale is the pixel size of one QR module.
	Scale int

	// JPEGQuality is the encoder quality used for JPEG exports.
	JPEGQuality int

	// Directory is where default file names are placed.
	// Empty means the current working directory.
	Directory string
}

// Validate checks the settings are within range.
func (o OutputSettings) Validate() error {
	if o.Scale < MinScale || o.Scale > MaxScale {
		return ErrInvalidInput
	}
	if o.JPEGQuality < MinJPEGQuality || o.JPEGQuality > MaxJPEGQuality {
		return ErrInvalidInput
	}
	return nil
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Output holds image output settings.
	Output OutputSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// A scale of 20 pixels per module matches common printed card sizes.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Scale:       20,
			JPEGQuality: 95,
			Directory:   "",
		},
	}
}
