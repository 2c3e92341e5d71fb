// Package schema describes the entity shapes as JSON Schema documents.
// The maps are served verbatim by GET /schema for the database viewer.
package schema

// All returns every entity schema keyed by its collection name. The key set
// is fixed: user, product, lead.
func All() map[string]any {
	return map[string]any{
		"user":    User(),
		"product": Product(),
		"lead":    Lead(),
	}
}

// User is introspection-only: no endpoint creates or modifies users.
func User() map[string]any {
	return map[string]any{
		"title": "User",
		"type":  "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "title": "Name"},
			"email": map[string]any{"type": "string", "title": "Email"},
		},
		"required": []string{"name", "email"},
	}
}

func Product() map[string]any {
	return map[string]any{
		"title": "Product",
		"type":  "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "title": "Title"},
			"description": map[string]any{"type": "string", "title": "Description"},
			"price":       map[string]any{"type": "number", "title": "Price"},
			"category":    map[string]any{"type": "string", "title": "Category"},
			"in_stock":    map[string]any{"type": "boolean", "title": "In Stock", "default": true},
			"image_url":   map[string]any{"type": "string", "title": "Image Url"},
			"buy_url":     map[string]any{"type": "string", "title": "Buy Url"},
			"featured":    map[string]any{"type": "boolean", "title": "Featured", "default": false},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
				"title": "Tags",
			},
		},
		"required": []string{"title", "price", "category"},
	}
}

func Lead() map[string]any {
	return map[string]any{
		"title": "Lead",
		"type":  "object",
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "title": "Name"},
			"email":   map[string]any{"type": "string", "title": "Email"},
			"message": map[string]any{"type": "string", "title": "Message"},
			"source":  map[string]any{"type": "string", "title": "Source", "default": "website"},
		},
		"required": []string{"name", "email"},
	}
}
