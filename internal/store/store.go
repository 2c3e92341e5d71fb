package store

import (
	"context"
	"errors"
	"reflect"
)

// Document is a schemaless record persisted in a named collection. The
// store-assigned identifier is exposed under the "_id" key as a string.
type Document map[string]any

// Filter is an equality match on document fields. An empty filter matches
// every document in the collection.
type Filter map[string]any

// Matches reports whether doc satisfies every equality constraint in f.
func (f Filter) Matches(doc Document) bool {
	for field, want := range f {
		got, ok := doc[field]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// Error kinds returned by Store implementations. Callers match them with
// errors.Is; the wrapped message carries the backend detail.
var (
	// ErrUnavailable means the underlying connection could not be established.
	ErrUnavailable = errors.New("store unavailable")
	// ErrQuery means a read against the store failed.
	ErrQuery = errors.New("store query failed")
	// ErrWrite means an insert against the store failed.
	ErrWrite = errors.New("store write failed")
)

// Store is the document-access contract consumed by the HTTP handlers.
// Implementations must be safe for concurrent use by simultaneous requests.
// A failed operation is surfaced immediately; there are no retries.
type Store interface {
	// ListDocuments returns up to limit documents from collection matching
	// the equality filter, in store-native order. A limit <= 0 returns every
	// match. Identifiers are normalized to their string form on output.
	ListDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)

	// CreateDocument inserts one document and returns its store-assigned
	// identifier as a string.
	CreateDocument(ctx context.Context, collection string, doc Document) (string, error)

	// ListCollectionNames returns the names of the collections currently
	// holding data. Used only by the diagnostic probe.
	ListCollectionNames(ctx context.Context) ([]string, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
