// Package models defines the typed request payloads for the catalog and the
// lead-capture form, and their mapping onto canonical store documents.
package models

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// stringOrNil keeps omitted optional text fields as explicit nulls in the
// persisted record.
func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func tagsOrNil(tags []string) any {
	if tags == nil {
		return nil
	}
	return tags
}
