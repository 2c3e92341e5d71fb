package validation_test

import (
	"errors"
	"testing"

	"shomee/internal/validation"

	"github.com/stretchr/testify/assert"
)

type testPayload struct {
	Name  *string  `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
	Note  *string  `json:"note"`
}

func TestStructReportsMissingFieldsByJSONName(t *testing.T) {
	err := validation.Struct(&testPayload{})
	assert.Error(t, err)

	var validationErr *validation.Error
	assert.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields, 2)
	assert.Equal(t, "Field 'name' failed on the 'required' tag", validationErr.Fields["name"])
	assert.Equal(t, "Field 'price' failed on the 'required' tag", validationErr.Fields["price"])
	assert.NotContains(t, validationErr.Fields, "note")
}

func TestStructAcceptsZeroValues(t *testing.T) {
	// Present-but-zero passes: required checks presence, not content.
	name, price := "", 0.0
	err := validation.Struct(&testPayload{Name: &name, Price: &price})
	assert.NoError(t, err)
}

func TestErrorMessageNamesFields(t *testing.T) {
	err := &validation.Error{Fields: map[string]string{"name": "missing"}}
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "name")
}
