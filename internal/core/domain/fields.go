package domain

import "slices"

// ContactField describes one ContactRecord field for input surfaces
// such as command-line flags and forms.
type ContactField struct {
	// Key is the toml/json name of the field.
	Key string

	// Flag is the command-line flag name.
	Flag string

	// Label is the human-readable name.
	Label string

	// Required marks fields that must be non-blank.
	Required bool

	ref func(*ContactRecord) *string
}

// Get returns the field's value in r.
func (f ContactField) Get(r ContactRecord) string {
	return *f.ref(&r)
}

// Set stores v in the field of r.
func (f ContactField) Set(r *ContactRecord, v string) {
	*f.ref(r) = v
}

var contactFields = []ContactField{
	{"first_name", "first", "First name", true, func(r *ContactRecord) *string { return &r.FirstName }},
	{"last_name", "last", "Last name", true, func(r *ContactRecord) *string { return &r.LastName }},
	{"organization", "org", "Organization", false, func(r *ContactRecord) *string { return &r.Organization }},
	{"title", "title", "Title", false, func(r *ContactRecord) *string { return &r.Title }},
	{"email", "email", "Email", false, func(r *ContactRecord) *string { return &r.Email }},
	{"work_phone", "work-phone", "Work phone", false, func(r *ContactRecord) *string { return &r.WorkPhone }},
	{"mobile_phone", "mobile", "Mobile phone", false, func(r *ContactRecord) *string { return &r.MobilePhone }},
	{"street", "street", "Street", false, func(r *ContactRecord) *string { return &r.Street }},
	{"city", "city", "City", false, func(r *ContactRecord) *string { return &r.City }},
	{"region", "region", "State/Region", false, func(r *ContactRecord) *string { return &r.Region }},
	{"postal_code", "postal-code", "Postal code", false, func(r *ContactRecord) *string { return &r.PostalCode }},
	{"country", "country", "Country", false, func(r *ContactRecord) *string { return &r.Country }},
	{"website", "website", "Website", false, func(r *ContactRecord) *string { return &r.Website }},
	{"notes", "notes", "Notes", false, func(r *ContactRecord) *string { return &r.Notes }},
}

// ContactFields returns every ContactRecord field in form order.
func ContactFields() []ContactField {
	return slices.Clone(contactFields)
}

// LookupContactField finds a field by its key.
func LookupContactField(key string) (ContactField, bool) {
	i := slices.IndexFunc(contactFields, func(f ContactField) bool { return f.Key == key })
	if i < 0 {
		return ContactField{}, false
	}
	return contactFields[i], true
}
