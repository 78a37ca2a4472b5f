package routestore

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutchev/chargemap/internal/models"
)

func TestMongoStoreSaveNilCollection(t *testing.T) {
	store := &MongoStore{}

	err := store.Save(context.Background(), map[string]*models.RouteGeometry{
		"station-1-station-2": {Duration: 60, Distance: 1000},
	})
	assert.Error(t, err)
}

func TestMongoStoreLoadNilCollection(t *testing.T) {
	store := &MongoStore{}

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}

func TestConnectMongoBadURI(t *testing.T) {
	client, err := ConnectMongo("mongodb://bad:uri")
	assert.Error(t, err)
	assert.Nil(t, client)
}

// Integration test (requires running MongoDB)
func TestMongoStoreRoundTrip_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping integration test")
	}
	client, err := ConnectMongo(uri)
	if err != nil {
		t.Skipf("failed to connect: %v, skipping integration test", err)
	}
	defer client.Disconnect(context.Background())

	coll := client.Database("chargemap_test").Collection("routes")
	require.NoError(t, coll.Drop(context.Background()))
	store := &MongoStore{Collection: coll}

	table := map[string]*models.RouteGeometry{
		"station-1-station-2": {
			Coordinates: []models.Coordinate{{Lon: 4.89, Lat: 52.37}, {Lon: 4.48, Lat: 51.92}},
			Duration:    3600,
			Distance:    57500,
		},
		"station-2-station-1": {
			Coordinates: []models.Coordinate{{Lon: 4.48, Lat: 51.92}, {Lon: 4.89, Lat: 52.37}},
			Duration:    3540,
			Distance:    57200,
		},
	}

	require.NoError(t, store.Save(context.Background(), table))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, table, loaded)

	// Saving again is idempotent: same keys, same geometry, no duplicates.
	require.NoError(t, store.Save(context.Background(), table))
	loaded, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, table, loaded)
}
