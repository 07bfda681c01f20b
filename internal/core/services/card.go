package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driving"
	"github.com/custodia-labs/vcardqr/internal/logger"
)

// Ensure CardService implements the interface.
var _ driving.CardService = (*CardService)(nil)

// CardService builds vCard 3.0 documents from contact records.
// It is stateless and safe for concurrent use.
type CardService struct {
	validate *validator.Validate
}

// contactValidations are the custom tags used on domain.ContactRecord.
// Unlike required, notblank rejects whitespace-only strings.
var contactValidations = map[string]validator.Func{
	"notblank": notBlank,
}

// NewCardService creates a new card service.
// It panics if the contact validations cannot be registered.
func NewCardService() *CardService {
	v, err := newValidator(contactValidations)
	if err != nil {
		panic(err)
	}
	return &CardService{validate: v}
}

// newValidator builds a validator with the given custom tags that reports
// fields by their TOML key.
func newValidator(custom map[string]validator.Func) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("registering %q validation: %w", tag, err)
		}
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v, nil
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return !domain.IsBlank(field.String())
}

// Validate checks that the required fields are non-blank.
func (s *CardService) Validate(record domain.ContactRecord) error {
	err := s.validate.Struct(record)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &domain.ValidationError{Fields: fields}
}

// Serialize validates the record and builds its vCard text.
func (s *CardService) Serialize(record domain.ContactRecord) (domain.CardDocument, error) {
	if err := s.Validate(record); err != nil {
		logger.Debug("Contact rejected: %v", err)
		return "", err
	}

	var b cardBuilder
	b.line(domain.CardBegin)
	b.line(domain.CardVersion)

	b.line("N:" + record.LastName + ";" + record.FirstName + ";;;")
	b.line("FN:" + record.DisplayName())

	b.optional("ORG:", record.Organization)
	b.optional("TITLE:", record.Title)
	b.optional("EMAIL:", record.Email)
	b.optional("TEL;TYPE=WORK,VOICE:", record.WorkPhone)
	b.optional("TEL;TYPE=CELL:", record.MobilePhone)

	if record.HasAddress() {
		// Post-office box and extended address are always empty.
		b.line("ADR;TYPE=WORK:;;" + strings.Join([]string{
			record.Street,
			record.City,
			record.Region,
			record.PostalCode,
			record.Country,
		}, ";"))
	}

	b.optional("URL:", record.Website)
	if !domain.IsBlank(record.Notes) {
		b.line("NOTE:" + EscapeText(record.Notes))
	}

	b.line(domain.CardEnd)

	doc := b.document()
	logger.Debug("Serialized card for %q: %d lines, %d bytes", record.DisplayName(), b.lines, len(doc))
	return doc, nil
}

// cardBuilder is an append-only line builder.
type cardBuilder struct {
	sb    strings.Builder
	lines int
}

func (b *cardBuilder) line(s string) {
	b.sb.WriteString(s)
	b.sb.WriteString(domain.CardLineTerminator)
	b.lines++
}

// optional emits prefix+value only when value is non-blank.
func (b *cardBuilder) optional(prefix, value string) {
	if domain.IsBlank(value) {
		return
	}
	b.line(prefix + value)
}

func (b *cardBuilder) document() domain.CardDocument {
	return domain.CardDocument(b.sb.String())
}
