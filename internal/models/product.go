package models

import (
	"shomee/internal/store"
	"shomee/internal/validation"
)

// ProductInput is the payload accepted by POST /products. Required fields
// are pointers so validation checks presence rather than non-zeroness: a
// free product (price 0) is still a valid product.
type ProductInput struct {
	Title       *string  `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Category    *string  `json:"category" validate:"required"`
	InStock     *bool    `json:"in_stock"`
	ImageURL    *string  `json:"image_url"`
	BuyURL      *string  `json:"buy_url"`
	Featured    *bool    `json:"featured"`
	Tags        []string `json:"tags"`
}

// Validate checks the payload shape, returning a *validation.Error that
// enumerates every offending field.
func (p *ProductInput) Validate() error {
	return validation.Struct(p)
}

// Document returns the canonical record persisted for the product. Every
// field appears in the record; in_stock defaults to true and featured to
// false when omitted.
func (p *ProductInput) Document() store.Document {
	return store.Document{
		"title":       stringValue(p.Title),
		"description": stringOrNil(p.Description),
		"price":       floatValue(p.Price),
		"category":    stringValue(p.Category),
		"in_stock":    boolOrDefault(p.InStock, true),
		"image_url":   stringOrNil(p.ImageURL),
		"buy_url":     stringOrNil(p.BuyURL),
		"featured":    boolOrDefault(p.Featured, false),
		"tags":        tagsOrNil(p.Tags),
	}
}
