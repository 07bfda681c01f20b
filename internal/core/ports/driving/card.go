package driving

import "github.com/custodia-labs/vcardqr/internal/core/domain"

// CardService serializes contacts into vCard documents.
type CardService interface {
	// Serialize validates the record and builds its vCard text.
	// Returns a *domain.ValidationError if a required field is blank.
	Serialize(record domain.ContactRecord) (domain.CardDocument, error)

	// Validate checks required fields without building a document.
	Validate(record domain.ContactRecord) error

	// Parse reads a vCard document back into a contact record.
	// Properties that have no ContactRecord field are ignored.
	Parse(doc domain.CardDocument) (*domain.ContactRecord, error)
}
