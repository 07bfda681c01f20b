package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for vcardqr resources.
	uriScheme = "vcardqr://"

	cardURI  = uriScheme + "current/card"
	imageURI = uriScheme + "current/image"
)

// registerResources registers the resources exposing the current symbol.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         cardURI,
		Name:        "current-card",
		Description: "vCard text of the most recently generated QR code",
		MIMEType:    "text/vcard",
	}, s.handleCardResource)

	s.server.AddResource(&mcp.Resource{
		URI:         imageURI,
		Name:        "current-image",
		Description: "PNG image of the most recently generated QR code",
		MIMEType:    domain.FormatPNG.MIMEType(),
	}, s.handleImageResource)
}

// handleCardResource returns the payload of the current symbol.
func (s *Server) handleCardResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	symbol := s.ports.Pipeline.Current()
	if symbol == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/vcard",
			Text:     symbol.Payload.String(),
		}},
	}, nil
}

// handleImageResource returns the current symbol as PNG.
func (s *Server) handleImageResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ports.Pipeline.State().CanExport() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := s.ports.Pipeline.Render(ctx, domain.FormatPNG)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: domain.FormatPNG.MIMEType(),
			Blob:     data,
		}},
	}, nil
}
