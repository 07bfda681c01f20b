package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected ImageFormat
	}{
		{"card.png", FormatPNG},
		{"card.PNG", FormatPNG},
		{"card.jpg", FormatJPEG},
		{"card.jpeg", FormatJPEG},
		{"card.JPG", FormatJPEG},
		{"card.bmp", FormatBMP},
		{"/tmp/out/card.Bmp", FormatBMP},
		{"card.xyz", FormatPNG},
		{"card", FormatPNG},
		{"", FormatPNG},
		{"archive.jpg.gif", FormatPNG},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFromPath(tt.path))
		})
	}
}

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		input  string
		format ImageFormat
		ok     bool
	}{
		{"png", FormatPNG, true},
		{".png", FormatPNG, true},
		{"JPG", FormatJPEG, true},
		{"jpeg", FormatJPEG, true},
		{" bmp ", FormatBMP, true},
		{"gif", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, ok := ParseImageFormat(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestImageFormat_Metadata(t *testing.T) {
	assert.Equal(t, ".png", FormatPNG.Extension())
	assert.Equal(t, ".jpg", FormatJPEG.Extension())
	assert.Equal(t, ".bmp", FormatBMP.Extension())

	assert.Equal(t, "image/png", FormatPNG.MIMEType())
	assert.Equal(t, "image/jpeg", FormatJPEG.MIMEType())
	assert.Equal(t, "image/bmp", FormatBMP.MIMEType())

	assert.True(t, FormatBMP.IsValid())
	assert.False(t, ImageFormat("gif").IsValid())
}
