// Package config reads service configuration from environment variables
// with sensible defaults. Both binaries load a .env file first (godotenv)
// and then call Load.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingEndpoint is returned when a path that needs live route
// resolution has no routing service configured. Callers treat it as fatal
// at startup rather than proceeding with guaranteed-empty output.
var ErrMissingEndpoint = errors.New("config: ROUTING_BASE_URL is not set")

// Config holds all configuration for the server and precompute binaries.
type Config struct {
	// HTTP
	Port           string
	AllowedOrigins []string

	// Routing service
	RoutingBaseURL string
	MaxRetries     int
	RetryDelay     time.Duration
	BatchSize      int
	BatchPause     time.Duration

	// Route table persistence
	RouteTablePath string
	MongoURI       string
	MongoDatabase  string

	// Generation seeds and animation
	StationSeed int
	NetworkSeed int
	TripSeed    int
	LoopLength  float64

	// Admin surface
	JWTSecret         string
	AdminPasswordHash string

	// MQTT export
	MQTTBrokerURL string
	MQTTTopic     string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),

		RoutingBaseURL: getEnv("ROUTING_BASE_URL", ""),
		MaxRetries:     getEnvInt("ROUTING_MAX_RETRIES", 3),
		RetryDelay:     time.Duration(getEnvInt("ROUTING_RETRY_DELAY_MS", 500)) * time.Millisecond,
		BatchSize:      getEnvInt("ROUTING_BATCH_SIZE", 3),
		BatchPause:     time.Duration(getEnvInt("ROUTING_BATCH_PAUSE_MS", 1000)) * time.Millisecond,

		RouteTablePath: getEnv("ROUTE_TABLE_PATH", "data/routes.json"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDatabase:  getEnv("MONGO_DB", "chargemap"),

		StationSeed: getEnvInt("STATION_SEED", 42),
		NetworkSeed: getEnvInt("NETWORK_SEED", 1337),
		TripSeed:    getEnvInt("TRIP_SEED", 2024),
		LoopLength:  float64(getEnvInt("LOOP_LENGTH", 1800)),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		MQTTBrokerURL: getEnv("MQTT_BROKER_URL", ""),
		MQTTTopic:     getEnv("MQTT_TOPIC", "chargemap/trips"),
	}
}

// RequireRoutingEndpoint enforces the live-resolution precondition.
func (c *Config) RequireRoutingEndpoint() error {
	if c.RoutingBaseURL == "" {
		return ErrMissingEndpoint
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
