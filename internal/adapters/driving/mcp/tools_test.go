package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

func newTestServer(t *testing.T, card *mockCardService, pipeline *mockPipeline) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Card: card, Pipeline: pipeline})
	require.NoError(t, err)
	return server
}

func TestContactInput_Record(t *testing.T) {
	input := ContactInput{
		FirstName:   "Jane",
		LastName:    "Doe",
		MobilePhone: "+1 555 0100",
		PostalCode:  "0150",
		Notes:       "hello",
	}

	record := input.Record()

	assert.Equal(t, domain.ContactRecord{
		FirstName:   "Jane",
		LastName:    "Doe",
		MobilePhone: "+1 555 0100",
		PostalCode:  "0150",
		Notes:       "hello",
	}, record)
}

func TestServer_handleContactCard(t *testing.T) {
	ctx := context.Background()

	t.Run("returns card text", func(t *testing.T) {
		card := &mockCardService{}
		server := newTestServer(t, card, &mockPipeline{})

		result, output, err := server.handleContactCard(ctx, nil, ContactInput{FirstName: "Jane", LastName: "Doe"})

		require.NoError(t, err)
		assert.Equal(t, testCard, output.Card)
		assert.Equal(t, "Jane", card.last.FirstName)
		require.Len(t, result.Content, 1)
		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok)
		assert.Equal(t, testCard, text.Text)
	})

	t.Run("returns validation error", func(t *testing.T) {
		card := &mockCardService{err: &domain.ValidationError{Fields: []string{"last_name"}}}
		server := newTestServer(t, card, &mockPipeline{})

		_, _, err := server.handleContactCard(ctx, nil, ContactInput{FirstName: "Jane"})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestServer_handleGenerate(t *testing.T) {
	ctx := context.Background()
	input := GenerateInput{Contact: ContactInput{FirstName: "Jane", LastName: "Doe"}}

	t.Run("returns text and PNG image", func(t *testing.T) {
		pipeline := &mockPipeline{}
		server := newTestServer(t, &mockCardService{}, pipeline)

		result, output, err := server.handleGenerate(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, testCard, output.Card)
		assert.Equal(t, 29, output.Modules)
		assert.Empty(t, output.Path)
		assert.Empty(t, pipeline.exportedTo)
		assert.Equal(t, domain.FormatPNG, pipeline.renderFormat)

		require.Len(t, result.Content, 3)
		summary := result.Content[0].(*mcp.TextContent)
		assert.Contains(t, summary.Text, "29x29")
		image, ok := result.Content[2].(*mcp.ImageContent)
		require.True(t, ok)
		assert.Equal(t, "image/png", image.MIMEType)
		assert.Equal(t, pngMagic, image.Data)
	})

	t.Run("writes to path", func(t *testing.T) {
		pipeline := &mockPipeline{}
		server := newTestServer(t, &mockCardService{}, pipeline)
		withPath := input
		withPath.Path = "/tmp/jane.bmp"

		result, output, err := server.handleGenerate(ctx, nil, withPath)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/jane.bmp", pipeline.exportedTo)
		assert.Equal(t, "/tmp/jane.bmp", output.Path)
		assert.Equal(t, "bmp", output.Format)
		assert.Contains(t, result.Content[0].(*mcp.TextContent).Text, "Saved to /tmp/jane.bmp")
	})

	t.Run("validation error skips pipeline", func(t *testing.T) {
		pipeline := &mockPipeline{}
		card := &mockCardService{err: &domain.ValidationError{Fields: []string{"first_name"}}}
		server := newTestServer(t, card, pipeline)

		_, _, err := server.handleGenerate(ctx, nil, input)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, pipeline.Current())
	})

	t.Run("encoding error", func(t *testing.T) {
		pipeline := &mockPipeline{generateErr: domain.ErrEncoding}
		server := newTestServer(t, &mockCardService{}, pipeline)

		_, _, err := server.handleGenerate(ctx, nil, input)

		assert.ErrorIs(t, err, domain.ErrEncoding)
	})

	t.Run("render error", func(t *testing.T) {
		pipeline := &mockPipeline{renderErr: domain.ErrExport}
		server := newTestServer(t, &mockCardService{}, pipeline)

		_, _, err := server.handleGenerate(ctx, nil, input)

		assert.ErrorIs(t, err, domain.ErrExport)
	})

	t.Run("export error", func(t *testing.T) {
		pipeline := &mockPipeline{exportErr: domain.ErrExport}
		server := newTestServer(t, &mockCardService{}, pipeline)
		withPath := input
		withPath.Path = "/nonexistent/dir/card.png"

		_, _, err := server.handleGenerate(ctx, nil, withPath)

		assert.ErrorIs(t, err, domain.ErrExport)
	})
}
