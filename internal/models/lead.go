package models

import (
	"shomee/internal/store"
	"shomee/internal/validation"
)

// DefaultLeadSource is recorded when a lead arrives without a source.
const DefaultLeadSource = "website"

// LeadInput is the payload accepted by POST /lead.
type LeadInput struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"required"`
	Message *string `json:"message"`
	Source  string  `json:"source"`
}

// Validate checks the payload shape.
func (l *LeadInput) Validate() error {
	return validation.Struct(l)
}

// Document returns the canonical record persisted for the lead, with the
// source defaulted when the form did not say where it came from.
func (l *LeadInput) Document() store.Document {
	source := l.Source
	if source == "" {
		source = DefaultLeadSource
	}
	return store.Document{
		"name":    stringValue(l.Name),
		"email":   stringValue(l.Email),
		"message": stringOrNil(l.Message),
		"source":  source,
	}
}
