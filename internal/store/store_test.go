package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"shomee/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
)

func TestFilterMatches(t *testing.T) {
	doc := store.Document{"category": "spices", "featured": true, "price": 4.5}

	assert.True(t, store.Filter{}.Matches(doc))
	assert.True(t, store.Filter{"category": "spices"}.Matches(doc))
	assert.True(t, store.Filter{"category": "spices", "featured": true}.Matches(doc))
	assert.False(t, store.Filter{"category": "tea"}.Matches(doc))
	assert.False(t, store.Filter{"featured": false}.Matches(doc))
	assert.False(t, store.Filter{"missing": "x"}.Matches(doc))
}

func TestMemoryStoreCreateAndList(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	id1, err := st.CreateDocument(ctx, "product", store.Document{"title": "Turmeric", "featured": true})
	assert.NoError(t, err)
	assert.NotEmpty(t, id1)

	id2, err := st.CreateDocument(ctx, "product", store.Document{"title": "Cumin", "featured": false})
	assert.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	// Insertion order, identifiers attached.
	docs, err := st.ListDocuments(ctx, "product", store.Filter{}, 0)
	assert.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, id1, docs[0]["_id"])
	assert.Equal(t, "Turmeric", docs[0]["title"])
	assert.Equal(t, id2, docs[1]["_id"])

	// Equality filter.
	docs, err = st.ListDocuments(ctx, "product", store.Filter{"featured": true}, 0)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, "Turmeric", docs[0]["title"])

	// Limit caps the result, zero lifts it.
	docs, err = st.ListDocuments(ctx, "product", store.Filter{}, 1)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)

	// Unknown collections are empty, not errors.
	docs, err = st.ListDocuments(ctx, "order", store.Filter{}, 0)
	assert.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryStoreIsolation(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	input := store.Document{"title": "Clove"}
	_, err := st.CreateDocument(ctx, "product", input)
	assert.NoError(t, err)

	// Mutating the caller's map after the insert must not leak in.
	input["title"] = "Changed"

	docs, err := st.ListDocuments(ctx, "product", store.Filter{}, 0)
	assert.NoError(t, err)
	assert.Equal(t, "Clove", docs[0]["title"])

	// Mutating a listed document must not leak back into the store.
	docs[0]["title"] = "Changed Again"
	docs, err = st.ListDocuments(ctx, "product", store.Filter{}, 0)
	assert.NoError(t, err)
	assert.Equal(t, "Clove", docs[0]["title"])
}

func TestMemoryStoreCollectionNames(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	names, err := st.ListCollectionNames(ctx)
	assert.NoError(t, err)
	assert.Empty(t, names)

	_, err = st.CreateDocument(ctx, "product", store.Document{"title": "Clove"})
	assert.NoError(t, err)
	_, err = st.CreateDocument(ctx, "lead", store.Document{"name": "Maya"})
	assert.NoError(t, err)

	names, err = st.ListCollectionNames(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"lead", "product"}, names)

	assert.NoError(t, st.Ping(ctx))
	assert.NoError(t, st.Close(ctx))
}

// newSQLiteStore opens a GormStore on a throwaway database file.
func newSQLiteStore(t *testing.T) *store.GormStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	st, err := store.NewGormStore(sqlite.Open(path), zerolog.Nop())
	assert.NoError(t, err)
	return st
}

func TestGormStoreRoundTrip(t *testing.T) {
	st := newSQLiteStore(t)
	ctx := context.Background()

	id1, err := st.CreateDocument(ctx, "product", store.Document{
		"title": "Turmeric", "category": "spices", "featured": true, "price": 4.5,
		"tags": []string{"golden", "earthy"},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, id1)

	id2, err := st.CreateDocument(ctx, "product", store.Document{
		"title": "Green Tea", "category": "tea", "featured": false, "price": 6.0,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	// Documents come back in insertion order with their JSON field types.
	docs, err := st.ListDocuments(ctx, "product", store.Filter{}, 0)
	assert.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, id1, docs[0]["_id"])
	assert.Equal(t, "Turmeric", docs[0]["title"])
	assert.Equal(t, 4.5, docs[0]["price"])
	assert.Equal(t, true, docs[0]["featured"])
	assert.Equal(t, []interface{}{"golden", "earthy"}, docs[0]["tags"])
	assert.Equal(t, id2, docs[1]["_id"])

	// Equality filters on decoded values.
	docs, err = st.ListDocuments(ctx, "product", store.Filter{"category": "spices"}, 0)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, "Turmeric", docs[0]["title"])

	docs, err = st.ListDocuments(ctx, "product", store.Filter{"featured": false}, 0)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, "Green Tea", docs[0]["title"])

	// Limit caps the result.
	docs, err = st.ListDocuments(ctx, "product", store.Filter{}, 1)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)

	// Unknown collections are empty, not errors.
	docs, err = st.ListDocuments(ctx, "order", store.Filter{}, 0)
	assert.NoError(t, err)
	assert.Empty(t, docs)
}

func TestGormStoreCollectionNames(t *testing.T) {
	st := newSQLiteStore(t)
	ctx := context.Background()

	names, err := st.ListCollectionNames(ctx)
	assert.NoError(t, err)
	assert.Empty(t, names)

	_, err = st.CreateDocument(ctx, "product", store.Document{"title": "Clove"})
	assert.NoError(t, err)
	_, err = st.CreateDocument(ctx, "product", store.Document{"title": "Cumin"})
	assert.NoError(t, err)
	_, err = st.CreateDocument(ctx, "lead", store.Document{"name": "Maya"})
	assert.NoError(t, err)

	// Distinct and sorted, one entry per collection.
	names, err = st.ListCollectionNames(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"lead", "product"}, names)

	assert.NoError(t, st.Ping(ctx))
	assert.NoError(t, st.Close(ctx))
}

func TestNewSelectsBackend(t *testing.T) {
	log := zerolog.Nop()

	// Memory needs no configuration.
	st, err := store.New(store.Config{Backend: store.BackendMemory}, log)
	assert.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, st)

	// SQLite opens the file named by URL.
	path := filepath.Join(t.TempDir(), "catalog.db")
	st, err = store.New(store.Config{Backend: store.BackendSQLite, URL: path}, log)
	assert.NoError(t, err)
	assert.IsType(t, &store.GormStore{}, st)
	assert.NoError(t, st.Close(context.Background()))

	// Unknown backends are rejected by name.
	_, err = store.New(store.Config{Backend: "cassandra"}, log)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}
