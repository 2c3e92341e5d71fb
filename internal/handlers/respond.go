// Package handlers maps the HTTP surface onto the document store: a product
// catalog, a lead-capture form, and the liveness/schema/diagnostic routes.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"shomee/internal/validation"
)

// Collection names in the document store.
const (
	productCollection = "product"
	leadCollection    = "lead"
)

// respondParseError renders a failed body parse. JSON type mismatches are
// part of the validation contract and come back as 422 naming the field;
// malformed JSON is a plain bad request.
func respondParseError(c *fiber.Ctx, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return respondFieldErrors(c, map[string]string{
			typeErr.Field: fmt.Sprintf("must be of type %s", typeErr.Type),
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// respondValidationError renders a 422 with one message per offending field.
func respondValidationError(c *fiber.Ctx, err error) error {
	fields := map[string]string{"payload": err.Error()}
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		fields = validationErr.Fields
	}
	return respondFieldErrors(c, fields)
}

func respondFieldErrors(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  fields,
	})
}

// respondStoreError renders a 500 for a failed document-store operation.
func respondStoreError(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
