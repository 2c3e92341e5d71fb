package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// documentRow is the storage shape of the SQL-backed backends: one row per
// document, the record itself JSON-encoded in the data column.
type documentRow struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	Collection string `gorm:"index;type:varchar(64);not null"`
	Data       string `gorm:"not null"`
	CreatedAt  time.Time
}

func (documentRow) TableName() string { return "documents" }

// GormStore keeps document collections in a relational database (SQLite or
// PostgreSQL) through GORM. It satisfies the same accessor contract as the
// MongoDB backend: equality filters, insertion order, string identifiers.
type GormStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewGormStore opens the database behind dialector and ensures the documents
// table exists.
func NewGormStore(dialector gorm.Dialector, log zerolog.Logger) (*GormStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &GormStore{db: db, log: log}, nil
}

// ListDocuments loads the collection's rows in insertion order and applies
// the equality filter to the decoded documents. Filtering happens after
// decoding so both SQL backends behave identically without JSON operators.
func (s *GormStore) ListDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	var rows []documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, wrapSQL(err, ErrQuery)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		var doc Document
		if err := json.Unmarshal([]byte(row.Data), &doc); err != nil {
			s.log.Warn().Err(err).Str("collection", collection).Str("id", row.ID).Msg("Skipping undecodable document")
			continue
		}
		doc["_id"] = row.ID
		if !filter.Matches(doc) {
			continue
		}
		docs = append(docs, doc)
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
	}
	return docs, nil
}

// CreateDocument inserts one document row, assigning a fresh identifier.
func (s *GormStore) CreateDocument(ctx context.Context, collection string, doc Document) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	row := documentRow{
		ID:         uuid.New().String(),
		Collection: collection,
		Data:       string(payload),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", wrapSQL(err, ErrWrite)
	}
	return row.ID, nil
}

// ListCollectionNames returns the distinct collection names holding rows.
func (s *GormStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&documentRow{}).
		Distinct().
		Order("collection").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, wrapSQL(err, ErrQuery)
	}
	return names, nil
}

// Ping checks the underlying connection.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *GormStore) Close(_ context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func wrapSQL(err error, kind error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		kind = ErrUnavailable
	}
	return fmt.Errorf("%w: %v", kind, err)
}
