package services

import (
	"fmt"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

// Structured value positions.
const (
	nameFamily = 0
	nameGiven  = 1

	adrStreet     = 2
	adrLocality   = 3
	adrRegion     = 4
	adrPostalCode = 5
	adrCountry    = 6
)

// Parse reads the first card in doc into a contact record.
// The record is not validated.
func (s *CardService) Parse(doc domain.CardDocument) (*domain.ContactRecord, error) {
	if doc.IsEmpty() {
		return nil, fmt.Errorf("%w: empty document", domain.ErrDecode)
	}

	card, err := vcard.NewDecoder(strings.NewReader(doc.String())).Decode()
	if err != nil {
		return nil, fmt.Errorf("%w: parse card: %w", domain.ErrDecode, err)
	}

	record := &domain.ContactRecord{
		Organization: card.Value(vcard.FieldOrganization),
		Title:        card.Value(vcard.FieldTitle),
		Email:        card.Value(vcard.FieldEmail),
		Website:      card.Value(vcard.FieldURL),
		Notes:        unescapeSemicolons(card.Value(vcard.FieldNote)),
	}

	if n := card.Get(vcard.FieldName); n != nil {
		parts := splitComponents(n.Value)
		record.LastName = component(parts, nameFamily)
		record.FirstName = component(parts, nameGiven)
	} else if fn := card.Value(vcard.FieldFormattedName); fn != "" {
		record.FirstName, record.LastName, _ = strings.Cut(fn, " ")
	}

	for _, tel := range card[vcard.FieldTelephone] {
		switch {
		case hasType(tel, vcard.TypeCell):
			if record.MobilePhone == "" {
				record.MobilePhone = tel.Value
			}
		case record.WorkPhone == "":
			record.WorkPhone = tel.Value
		}
	}

	if adr := card.Get(vcard.FieldAddress); adr != nil {
		parts := splitComponents(adr.Value)
		record.Street = component(parts, adrStreet)
		record.City = component(parts, adrLocality)
		record.Region = component(parts, adrRegion)
		record.PostalCode = component(parts, adrPostalCode)
		record.Country = component(parts, adrCountry)
	}

	return record, nil
}

// splitComponents splits a structured value on unescaped semicolons.
func splitComponents(value string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\\':
			i++
		case ';':
			parts = append(parts, value[start:i])
			start = i + 1
		}
	}
	return append(parts, value[start:])
}

func component(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return unescapeSemicolons(parts[i])
}

// unescapeSemicolons undoes the one escape the go-vcard decoder keeps.
// Backslashes, \n and \, are already decoded and must not be touched again.
func unescapeSemicolons(s string) string {
	return strings.ReplaceAll(s, `\;`, ";")
}

// hasType reports whether field carries the TYPE parameter value t.
// Comma-separated values inside one parameter are matched individually.
func hasType(field *vcard.Field, t string) bool {
	for name, values := range field.Params {
		if !strings.EqualFold(name, vcard.ParamType) {
			continue
		}
		for _, v := range values {
			for _, item := range strings.Split(v, ",") {
				if strings.EqualFold(strings.TrimSpace(item), t) {
					return true
				}
			}
		}
	}
	return false
}
