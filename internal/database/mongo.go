package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo wraps the document store client and the database handle the
// repositories read from.  The service never writes to the store; the
// ingest pipeline owns the documents.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to the document store and verifies the connection with a
// bounded ping before returning.
func Open(uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Collection returns a handle on the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
