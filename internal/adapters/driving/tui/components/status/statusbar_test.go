package status

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_SetStateClearsMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetMessage("stale")

	bar.SetState(StateGenerating)

	assert.Equal(t, StateGenerating, bar.State())
	assert.Empty(t, bar.Message())
}

func TestStatusBar_SetError(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetError(errors.New("first name is required"))

	assert.Equal(t, StateError, bar.State())
	assert.Equal(t, "first name is required", bar.Message())
	assert.Contains(t, bar.View(), "Error: first name is required")
}

func TestStatusBar_SetErrorNil(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetError(nil)

	assert.Equal(t, StateError, bar.State())
	assert.Contains(t, bar.View(), "Error")
}

func TestStatusBar_ViewPerState(t *testing.T) {
	tests := []struct {
		state    State
		message  string
		expected string
	}{
		{StateReady, "", "Ready"},
		{StateGenerating, "", "Generating..."},
		{StateGenerated, "", "QR code generated"},
		{StatePrompt, "", "Save as"},
		{StateSaving, "", "Saving..."},
		{StateSaved, "/tmp/card.png", "Saved: /tmp/card.png"},
		{StateReady, "form cleared", "Ready: form cleared"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(200)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)

			assert.Contains(t, bar.View(), tt.expected)
		})
	}
}

func TestStatusBar_HintsFollowState(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(200)

	assert.Contains(t, bar.View(), "ctrl+g: generate")

	bar.SetState(StatePrompt)
	view := bar.View()
	assert.Contains(t, view, "enter: save")
	assert.NotContains(t, view, "ctrl+g")
}

func TestStatusBar_NarrowWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(10)

	assert.NotEmpty(t, bar.View())
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetError(errors.New("boom"))

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
}
