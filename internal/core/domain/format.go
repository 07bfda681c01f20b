package domain

import (
	"path/filepath"
	"strings"
)

// ImageFormat is the file container used when exporting a symbol.
type ImageFormat string

// Supported container formats.
const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
	FormatBMP  ImageFormat = "bmp"
)

// IsValid returns true if the format is recognised.
func (f ImageFormat) IsValid() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatBMP:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ImageFormat) String() string {
	return string(f)
}

// Extension returns the canonical file extension, including the dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatBMP:
		return ".bmp"
	default:
		return ".png"
	}
}

// MIMEType returns the media type of the format.
func (f ImageFormat) MIMEType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatBMP:
		return "image/bmp"
	default:
		return "image/png"
	}
}

// FormatFromPath selects the container from a destination's extension.
// Unrecognised or missing extensions select PNG.
func FormatFromPath(path string) ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".bmp":
		return FormatBMP
	default:
		return FormatPNG
	}
}

// ParseImageFormat parses a format name such as "png", "jpg" or "bmp".
func ParseImageFormat(s string) (ImageFormat, bool) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return FormatPNG, true
	case "jpg", "jpeg":
		return FormatJPEG, true
	case "bmp":
		return FormatBMP, true
	default:
		return "", false
	}
}
