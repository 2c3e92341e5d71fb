package store

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

// Supported backend names.
const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

const defaultSQLitePath = "shomee.db"

// Config selects and parameterizes a Store backend.
type Config struct {
	// Backend is one of mongo (default), postgres, sqlite, memory.
	Backend string
	// URL is the MongoDB URI, PostgreSQL DSN, or SQLite file path.
	URL string
	// Database is the MongoDB database name.
	Database string
}

// New creates the Store named by cfg.Backend.
func New(cfg Config, log zerolog.Logger) (Store, error) {
	switch cfg.Backend {
	case "", BackendMongo:
		return NewMongoStore(cfg.URL, cfg.Database, log)
	case BackendPostgres:
		return NewGormStore(postgres.Open(cfg.URL), log)
	case BackendSQLite:
		path := cfg.URL
		if path == "" {
			path = defaultSQLitePath
		}
		return NewGormStore(sqlite.Open(path), log)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (supported: mongo, postgres, sqlite, memory)", cfg.Backend)
	}
}
