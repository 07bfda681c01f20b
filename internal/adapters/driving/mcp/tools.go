package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

// ContactInput is the contact schema shared by the tools.
type ContactInput struct {
	FirstName    string `json:"first_name" jsonschema:"given name (required)"`
	LastName     string `json:"last_name" jsonschema:"family name (required)"`
	Organization string `json:"organization,omitempty" jsonschema:"company or organization"`
	Title        string `json:"title,omitempty" jsonschema:"job title"`
	Email        string `json:"email,omitempty" jsonschema:"email address"`
	WorkPhone    string `json:"work_phone,omitempty" jsonschema:"work telephone number"`
	MobilePhone  string `json:"mobile_phone,omitempty" jsonschema:"mobile telephone number"`
	Street       string `json:"street,omitempty" jsonschema:"street address"`
	City         string `json:"city,omitempty" jsonschema:"city"`
	Region       string `json:"region,omitempty" jsonschema:"state or region"`
	PostalCode   string `json:"postal_code,omitempty" jsonschema:"postal code"`
	Country      string `json:"country,omitempty" jsonschema:"country"`
	Website      string `json:"website,omitempty" jsonschema:"website URL"`
	Notes        string `json:"notes,omitempty" jsonschema:"free-form notes"`
}

// Record converts the input to a domain contact.
func (c ContactInput) Record() domain.ContactRecord {
	return domain.ContactRecord{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Organization: c.Organization,
		Title:        c.Title,
		Email:        c.Email,
		WorkPhone:    c.WorkPhone,
		MobilePhone:  c.MobilePhone,
		Street:       c.Street,
		City:         c.City,
		Region:       c.Region,
		PostalCode:   c.PostalCode,
		Country:      c.Country,
		Website:      c.Website,
		Notes:        c.Notes,
	}
}

// CardOutput is the output schema for the contact_card tool.
type CardOutput struct {
	Card string `json:"card"`
}

// GenerateInput is the input schema for the generate_contact_qr tool.
type GenerateInput struct {
	Contact ContactInput `json:"contact" jsonschema:"the contact to encode"`
	Path    string       `json:"path,omitempty" jsonschema:"optional file to write; .png, .jpg/.jpeg or .bmp selects the format"`
}

// GenerateOutput is the output schema for the generate_contact_qr tool.
type GenerateOutput struct {
	Card    string `json:"card"`
	Modules int    `json:"modules"`
	Path    string `json:"path,omitempty"`
	Format  string `json:"format,omitempty"`
	Bytes   int64  `json:"bytes,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "contact_card",
		Description: "Build the vCard 3.0 text for a contact",
	}, s.handleContactCard)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_contact_qr",
		Description: "Encode a contact as a vCard QR code and return it as a PNG image, optionally saving it to a file",
	}, s.handleGenerate)
}

// handleContactCard handles the contact_card tool invocation.
func (s *Server) handleContactCard(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ContactInput,
) (*mcp.CallToolResult, CardOutput, error) {
	doc, err := s.ports.Card.Serialize(input.Record())
	if err != nil {
		return nil, CardOutput{}, err
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: doc.String()}},
	}
	return result, CardOutput{Card: doc.String()}, nil
}

// handleGenerate handles the generate_contact_qr tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	doc, err := s.ports.Card.Serialize(input.Contact.Record())
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	symbol, err := s.ports.Pipeline.Generate(ctx, doc)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	png, err := s.ports.Pipeline.Render(ctx, domain.FormatPNG)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	output := GenerateOutput{
		Card:    doc.String(),
		Modules: symbol.Size(),
	}
	summary := fmt.Sprintf("Generated a %dx%d module QR code.", symbol.Size(), symbol.Size())

	if input.Path != "" {
		exported, err := s.ports.Pipeline.Export(ctx, input.Path)
		if err != nil {
			return nil, GenerateOutput{}, err
		}
		output.Path = exported.Path
		output.Format = exported.Format.String()
		output.Bytes = exported.Bytes
		summary += fmt.Sprintf(" Saved to %s.", exported.Path)
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: summary},
			&mcp.TextContent{Text: doc.String()},
			&mcp.ImageContent{Data: png, MIMEType: domain.FormatPNG.MIMEType()},
		},
	}
	return result, output, nil
}
