package routestore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dutchev/chargemap/internal/models"
)

// ConnectMongo connects to MongoDB and verifies the connection with a ping.
func ConnectMongo(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// MongoStore persists the route table in a MongoDB collection, one document
// per route key.
type MongoStore struct {
	Collection *mongo.Collection
}

type routeDocument struct {
	Key         string              `bson:"_id"`
	Coordinates []models.Coordinate `bson:"coordinates"`
	Duration    float64             `bson:"duration"`
	Distance    float64             `bson:"distance"`
}

// Save upserts every entry. Writes are idempotent: a route key always maps
// to the same geometry, so replaying a save is harmless.
func (s *MongoStore) Save(ctx context.Context, table map[string]*models.RouteGeometry) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	opts := options.Replace().SetUpsert(true)
	for key, geom := range table {
		doc := routeDocument{
			Key:         key,
			Coordinates: geom.Coordinates,
			Duration:    geom.Duration,
			Distance:    geom.Distance,
		}
		if _, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
			return fmt.Errorf("route %s upsert failed: %w", key, err)
		}
	}
	return nil
}

// Load reads the full table.
func (s *MongoStore) Load(ctx context.Context) (map[string]*models.RouteGeometry, error) {
	if s.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := s.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []routeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	table := make(map[string]*models.RouteGeometry, len(docs))
	for _, doc := range docs {
		table[doc.Key] = &models.RouteGeometry{
			Coordinates: doc.Coordinates,
			Duration:    doc.Duration,
			Distance:    doc.Distance,
		}
	}
	return table, nil
}
