package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultMongoURI = "mongodb://localhost:27017"

// serverSelectionTimeout bounds how long a single operation waits for a
// reachable server before it is reported as unavailable.
const serverSelectionTimeout = 5 * time.Second

// MongoStore is the MongoDB implementation of Store. The driver's client is
// safe for concurrent use and maintains its own connection pool; connecting
// is lazy, so an unreachable server surfaces on first use rather than at
// startup.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// NewMongoStore creates a MongoStore for the given connection URI and
// database name. An empty URI falls back to a local MongoDB instance.
func NewMongoStore(uri, database string, log zerolog.Logger) (*MongoStore, error) {
	if uri == "" {
		uri = defaultMongoURI
	}

	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(serverSelectionTimeout)
	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(database),
		log:    log,
	}, nil
}

// ListDocuments returns up to limit documents matching the equality filter.
func (s *MongoStore) ListDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	query := bson.M{}
	for field, value := range filter {
		query[field] = value
	}

	cur, err := s.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, s.wrap(err, ErrQuery)
	}
	defer cur.Close(ctx)

	docs := make([]Document, 0)
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, s.wrap(err, ErrQuery)
		}
		docs = append(docs, normalizeID(Document(doc)))
	}
	if err := cur.Err(); err != nil {
		return nil, s.wrap(err, ErrQuery)
	}
	return docs, nil
}

// CreateDocument inserts one document and returns the assigned ObjectID in
// its canonical hex form.
func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc Document) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", s.wrap(err, ErrWrite)
	}
	return insertedIDString(res.InsertedID), nil
}

// ListCollectionNames lists the database's collections.
func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, s.wrap(err, ErrQuery)
	}
	return names, nil
}

// Ping checks that a server is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// wrap classifies a driver error: connectivity problems become
// ErrUnavailable, everything else keeps the operation's kind.
func (s *MongoStore) wrap(err error, kind error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		kind = ErrUnavailable
	}
	return fmt.Errorf("%w: %v", kind, err)
}

// normalizeID rewrites the ObjectID under "_id" to its hex string so
// identifiers leave the accessor in canonical string form.
func normalizeID(doc Document) Document {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}

func insertedIDString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
