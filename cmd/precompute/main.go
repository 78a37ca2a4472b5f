// Command precompute resolves every route the demand network needs and
// persists the table, so the server can start without hammering the
// routing service. Run it once per seed set; reruns are idempotent.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/dutchev/chargemap/internal/config"
	"github.com/dutchev/chargemap/internal/models"
	"github.com/dutchev/chargemap/internal/pipeline"
	"github.com/dutchev/chargemap/internal/routestore"
	"github.com/dutchev/chargemap/internal/routing"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	if err := cfg.RequireRoutingEndpoint(); err != nil {
		log.WithError(err).Fatal("Precompute needs a routing service; refusing to write an empty table")
	}

	runID := uuid.New().String()
	seeds := pipeline.Seeds{
		Stations: int32(cfg.StationSeed),
		Network:  int32(cfg.NetworkSeed),
		Trips:    int32(cfg.TripSeed),
	}

	session := pipeline.NewSession(seeds, cfg.LoopLength, nil)
	pairs := session.PairRequests()
	log.WithFields(log.Fields{
		"run":      runID,
		"stations": len(session.Stations()),
		"edges":    len(session.Edges()),
		"pairs":    len(pairs),
	}).Info("Starting route precompute")

	client := routing.NewClient(cfg.RoutingBaseURL,
		routing.WithMaxRetries(cfg.MaxRetries),
		routing.WithRetryDelay(cfg.RetryDelay),
	)

	requests := make([]routing.Pair, len(pairs))
	for i, p := range pairs {
		requests[i] = routing.Pair{Key: p.Key, From: p.From, To: p.To}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	result := client.ResolveBatch(ctx, requests, cfg.BatchSize, cfg.BatchPause, func(resolved, failed, total int) {
		log.WithFields(log.Fields{
			"resolved": resolved,
			"failed":   failed,
			"total":    total,
		}).Info("Resolution progress")
	})

	if ctx.Err() != nil {
		log.Warn("Interrupted; persisting partial route table")
	}
	for _, key := range result.Failed {
		log.WithField("route", key).Warn("Route could not be resolved")
	}

	// Persist under a fresh context so an interrupt still writes the
	// partial table.
	if err := persist(context.Background(), cfg, result.Resolved); err != nil {
		log.WithError(err).Fatal("Failed to persist route table")
	}

	log.WithFields(log.Fields{
		"run":     runID,
		"fetched": len(result.Resolved),
		"failed":  len(result.Failed),
		"elapsed": time.Since(started).Round(time.Second).String(),
	}).Info("Precompute complete")
}

func persist(ctx context.Context, cfg *config.Config, table map[string]*models.RouteGeometry) error {
	if err := os.MkdirAll(filepath.Dir(cfg.RouteTablePath), 0o755); err != nil {
		return err
	}
	if err := routestore.NewFileStore(cfg.RouteTablePath).Save(ctx, table); err != nil {
		return err
	}
	log.WithField("path", cfg.RouteTablePath).Info("Route table written")

	if cfg.MongoURI != "" {
		client, err := routestore.ConnectMongo(cfg.MongoURI)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())
		coll := client.Database(cfg.MongoDatabase).Collection("routes")
		if err := (&routestore.MongoStore{Collection: coll}).Save(ctx, table); err != nil {
			return err
		}
		log.WithField("database", cfg.MongoDatabase).Info("Route table mirrored to MongoDB")
	}
	return nil
}
