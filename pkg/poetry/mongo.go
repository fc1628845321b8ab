package poetry

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Default MongoDB names used when MongoConfig leaves them empty.
const (
	DefaultMongoDatabase   = "copybook"
	DefaultMongoCollection = "poems"
)

// MongoConfig configures a MongoLibrary.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoLibrary serves poems from a MongoDB collection. Documents use the
// poem id as "_id"; listing is ordered by id.
type MongoLibrary struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoLibrary connects to MongoDB and verifies the connection.
func NewMongoLibrary(ctx context.Context, cfg MongoConfig) (*MongoLibrary, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo uri is required")
	}
	if cfg.Database == "" {
		cfg.Database = DefaultMongoDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultMongoCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoLibrary{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// List returns all poems ordered by id.
func (l *MongoLibrary) List(ctx context.Context) ([]Item, error) {
	cur, err := l.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list poems: %w", err)
	}
	var items []Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode poems: %w", err)
	}
	return items, nil
}

// Get returns the poem with the given id.
func (l *MongoLibrary) Get(ctx context.Context, id string) (Item, error) {
	var item Item
	err := l.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Item{}, fmt.Errorf("get poem %s: %w", id, err)
	}
	return item, nil
}

// Seed upserts items into the collection, keyed by id.
func (l *MongoLibrary) Seed(ctx context.Context, items []Item) error {
	opts := options.Replace().SetUpsert(true)
	for _, it := range items {
		if it.ID == "" {
			return fmt.Errorf("seed poem %q: missing id", it.Title)
		}
		if _, err := l.coll.ReplaceOne(ctx, bson.M{"_id": it.ID}, it, opts); err != nil {
			return fmt.Errorf("seed poem %s: %w", it.ID, err)
		}
	}
	return nil
}

// Close disconnects from MongoDB.
func (l *MongoLibrary) Close(ctx context.Context) error {
	return l.client.Disconnect(ctx)
}

var _ Library = (*MongoLibrary)(nil)
