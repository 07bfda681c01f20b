package domain

import "strings"

// CardLineTerminator ends every line of a CardDocument, footer included.
const CardLineTerminator = "\r\n"

// vCard framing lines.
const (
	CardBegin   = "BEGIN:VCARD"
	CardVersion = "VERSION:3.0"
	CardEnd     = "END:VCARD"
)

// CardDocument is the serialized vCard text for one contact.
// It is the literal payload encoded into the QR symbol.
type CardDocument string

// String returns the document text.
func (d CardDocument) String() string {
	return string(d)
}

// Lines returns the document lines without terminators.
func (d CardDocument) Lines() []string {
	s := strings.TrimSuffix(string(d), CardLineTerminator)
	if s == "" {
		return nil
	}
	return strings.Split(s, CardLineTerminator)
}

// IsEmpty reports whether the document has no content.
func (d CardDocument) IsEmpty() bool {
	return d == ""
}
