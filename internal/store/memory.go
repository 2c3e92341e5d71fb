package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory implementation of Store. It backs the test
// suite and the "memory" backend for local development without a database.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemoryStore creates a new instance of MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
	}
}

// ListDocuments returns matching documents in insertion order.
func (s *MemoryStore) ListDocuments(_ context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0)
	for _, doc := range s.collections[collection] {
		if !filter.Matches(doc) {
			continue
		}
		docs = append(docs, copyDocument(doc))
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
	}
	return docs, nil
}

// CreateDocument stores a copy of doc and assigns it a fresh identifier.
func (s *MemoryStore) CreateDocument(_ context.Context, collection string, doc Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	stored := copyDocument(doc)
	stored["_id"] = id
	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

// ListCollectionNames returns the names of non-empty collections, sorted.
func (s *MemoryStore) ListCollectionNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close(_ context.Context) error {
	return nil
}

// copyDocument keeps stored documents isolated from caller mutation. Values
// are copied shallowly; the catalog's payloads hold only scalars and string
// slices.
func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for field, value := range doc {
		out[field] = value
	}
	return out
}
