package domain

import (
	"strings"
	"unicode"
)

// ContactRecord holds the fields entered for a single contact.
// Blank optional fields are treated as absent. Values are kept exactly as
// entered; only blankness checks ignore surrounding whitespace.
type ContactRecord struct {
	FirstName string `toml:"first_name" json:"first_name" validate:"notblank"`
	LastName  string `toml:"last_name" json:"last_name" validate:"notblank"`

	Organization string `toml:"organization,omitempty" json:"organization,omitempty"`
	Title        string `toml:"title,omitempty" json:"title,omitempty"`
	Email        string `toml:"email,omitempty" json:"email,omitempty"`
	WorkPhone    string `toml:"work_phone,omitempty" json:"work_phone,omitempty"`
	MobilePhone  string `toml:"mobile_phone,omitempty" json:"mobile_phone,omitempty"`

	Street     string `toml:"street,omitempty" json:"street,omitempty"`
	City       string `toml:"city,omitempty" json:"city,omitempty"`
	Region     string `toml:"region,omitempty" json:"region,omitempty"`
	PostalCode string `toml:"postal_code,omitempty" json:"postal_code,omitempty"`
	Country    string `toml:"country,omitempty" json:"country,omitempty"`

	Website string `toml:"website,omitempty" json:"website,omitempty"`
	Notes   string `toml:"notes,omitempty" json:"notes,omitempty"`
}

// IsBlank reports whether s is empty or only Unicode whitespace.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// HasAddress reports whether any of the five address parts is non-blank.
func (c ContactRecord) HasAddress() bool {
	return !IsBlank(c.Street) ||
		!IsBlank(c.City) ||
		!IsBlank(c.Region) ||
		!IsBlank(c.PostalCode) ||
		!IsBlank(c.Country)
}

// DisplayName returns "First Last".
func (c ContactRecord) DisplayName() string {
	return c.FirstName + " " + c.LastName
}

// DefaultFileName returns the suggested export file name for the contact,
// QRCode_<first>_<last>.png, with path separators and blanks made safe.
func (c ContactRecord) DefaultFileName() string {
	return "QRCode_" + fileNamePart(c.FirstName) + "_" + fileNamePart(c.LastName) + FormatPNG.Extension()
}

func fileNamePart(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		case ' ', '\t', '\r', '\n':
			return '_'
		}
		return r
	}, s)
}
