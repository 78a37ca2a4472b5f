package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/dutchev/chargemap/internal/auth"
	"github.com/dutchev/chargemap/internal/config"
	"github.com/dutchev/chargemap/internal/handlers"
	"github.com/dutchev/chargemap/internal/middleware"
	"github.com/dutchev/chargemap/internal/pipeline"
	"github.com/dutchev/chargemap/internal/publish"
	"github.com/dutchev/chargemap/internal/routestore"
	"github.com/dutchev/chargemap/internal/routing"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	seeds := pipeline.Seeds{
		Stations: int32(cfg.StationSeed),
		Network:  int32(cfg.NetworkSeed),
		Trips:    int32(cfg.TripSeed),
	}

	source := buildRouteSource(cfg)
	session := pipeline.NewSession(seeds, cfg.LoopLength, source)
	log.WithFields(log.Fields{
		"stations": len(session.Stations()),
		"edges":    len(session.Edges()),
	}).Info("Generated charging network")

	// Route loading can take minutes against a live routing service, so it
	// runs in the background while the API already serves stations/edges.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		if err := session.LoadRoutes(ctx); err != nil {
			log.WithError(err).Error("Route loading failed; trips unavailable")
			return
		}
		publishTrips(cfg, session)
	}()

	var authService *auth.Service
	var authMw *middleware.AuthMiddleware
	if cfg.JWTSecret != "" {
		authService = auth.NewService(cfg.JWTSecret, cfg.AdminPasswordHash, 24*time.Hour)
		authMw = middleware.NewAuthMiddleware(authService)
	} else {
		log.Warn("JWT_SECRET not set; admin endpoints disabled")
	}

	router := handlers.NewRouter(
		handlers.NewHandler(session, authService),
		authMw,
		handlers.RouterConfig{AllowedOrigins: cfg.AllowedOrigins, DefaultSeeds: seeds},
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Server shutdown failed")
		}
	}()

	log.WithField("port", cfg.Port).Info("HTTP server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("Server failed")
	}
}

// buildRouteSource picks where route geometry comes from. Precomputed
// stores win over live resolution so a normal start never hammers the
// routing service: Mongo, then the JSON table file, then live, then none.
func buildRouteSource(cfg *config.Config) pipeline.RouteSource {
	if cfg.MongoURI != "" {
		client, err := routestore.ConnectMongo(cfg.MongoURI)
		if err != nil {
			log.WithError(err).Warn("MongoDB unavailable, trying other route sources")
		} else {
			log.Info("Using MongoDB route store")
			coll := client.Database(cfg.MongoDatabase).Collection("routes")
			return &pipeline.StoreSource{Store: &routestore.MongoStore{Collection: coll}}
		}
	}

	if _, err := os.Stat(cfg.RouteTablePath); err == nil {
		log.WithField("path", cfg.RouteTablePath).Info("Using precomputed route table")
		return &pipeline.StoreSource{Store: routestore.NewFileStore(cfg.RouteTablePath)}
	}

	if cfg.RoutingBaseURL != "" {
		log.WithField("endpoint", cfg.RoutingBaseURL).Info("Using live route resolution")
		client := routing.NewClient(cfg.RoutingBaseURL,
			routing.WithMaxRetries(cfg.MaxRetries),
			routing.WithRetryDelay(cfg.RetryDelay),
		)
		return &pipeline.LiveSource{Client: client, BatchSize: cfg.BatchSize, Pause: cfg.BatchPause}
	}

	log.Warn("No precomputed table or routing endpoint; trips will be empty")
	return nil
}

func publishTrips(cfg *config.Config, session *pipeline.Session) {
	if cfg.MQTTBrokerURL == "" {
		return
	}
	pub, err := publish.NewPublisher(cfg.MQTTBrokerURL, "chargemap-server", cfg.MQTTTopic)
	if err != nil {
		log.WithError(err).Warn("MQTT publish skipped")
		return
	}
	defer pub.Close()
	if err := pub.PublishTrips(session.Trips()); err != nil {
		log.WithError(err).Warn("MQTT publish failed")
	}
}
