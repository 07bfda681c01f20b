package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardDocument_Lines(t *testing.T) {
	doc := CardDocument("BEGIN:VCARD\r\nVERSION:3.0\r\nEND:VCARD\r\n")
	assert.Equal(t, []string{"BEGIN:VCARD", "VERSION:3.0", "END:VCARD"}, doc.Lines())
	assert.Nil(t, CardDocument("").Lines())
}

func TestCardDocument_IsEmpty(t *testing.T) {
	assert.True(t, CardDocument("").IsEmpty())
	assert.False(t, CardDocument("x").IsEmpty())
}

func TestPipelineState(t *testing.T) {
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "generated", StateGenerated.String())
	assert.False(t, StateEmpty.CanExport())
	assert.True(t, StateGenerated.CanExport())
}

func TestErrorCorrection_String(t *testing.T) {
	assert.Equal(t, "Q", CardErrorCorrection.String())
	assert.Equal(t, "L", ErrorCorrectionLow.String())
	assert.Equal(t, "M", ErrorCorrectionMedium.String())
	assert.Equal(t, "H", ErrorCorrectionHigh.String())
}
