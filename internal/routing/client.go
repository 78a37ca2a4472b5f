// Package routing resolves station pairs to real road geometry through an
// OSRM-compatible directions service. Results are cached for the process
// lifetime; rate limiting is retried with exponential backoff, other
// failures with a flat delay, and exhausted retries degrade to
// ErrUnavailable so callers can skip the pair instead of failing.
package routing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/dutchev/chargemap/internal/models"
)

var (
	// ErrRateLimited signals an HTTP 429 from the routing service.
	ErrRateLimited = errors.New("routing: rate limited")
	// ErrRouteNotFound signals the service found no route between the
	// points. Not retryable.
	ErrRouteNotFound = errors.New("routing: no route between points")
	// ErrUnavailable signals that all retries were exhausted.
	ErrUnavailable = errors.New("routing: service unavailable")
)

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// Client talks to an OSRM-compatible routing service with an in-memory
// geometry cache keyed by rounded coordinate pairs.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	sleep      func(time.Duration)

	mu    sync.RWMutex
	cache map[string]*models.RouteGeometry
}

// Option configures a Client.
type Option func(*Client)

// WithMaxRetries sets the retry budget per request.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithRetryDelay sets the base retry delay.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithSleepFunc overrides the backoff sleep. Tests use this to record
// delays instead of waiting them out.
func WithSleepFunc(fn func(time.Duration)) Option {
	return func(c *Client) { c.sleep = fn }
}

// NewClient returns a Client for the given service base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		sleep:      time.Sleep,
		cache:      make(map[string]*models.RouteGeometry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func cacheKey(from, to models.Coordinate) string {
	return fmt.Sprintf("%.5f,%.5f;%.5f,%.5f", from.Lon, from.Lat, to.Lon, to.Lat)
}

// Resolve maps a coordinate pair to road geometry. Cache hits return
// immediately with no network activity. 429 responses back off
// exponentially (base * 2^attempt); other failures wait the flat base
// delay. A no-route answer is permanent and returned without retrying.
func (c *Client) Resolve(from, to models.Coordinate) (*models.RouteGeometry, error) {
	key := cacheKey(from, to)
	if geom := c.cached(key); geom != nil {
		return geom, nil
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		geom, err := c.fetch(from, to)
		if err == nil {
			c.store(key, geom)
			return geom, nil
		}
		if errors.Is(err, ErrRouteNotFound) {
			return nil, err
		}
		lastErr = err
		if attempt == c.maxRetries {
			break
		}
		if errors.Is(err, ErrRateLimited) {
			c.sleep(c.retryDelay * (1 << attempt))
		} else {
			c.sleep(c.retryDelay)
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (c *Client) cached(key string) *models.RouteGeometry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache[key]
}

func (c *Client) store(key string, geom *models.RouteGeometry) {
	c.mu.Lock()
	c.cache[key] = geom
	c.mu.Unlock()
}

// CacheSize reports the number of cached geometries.
func (c *Client) CacheSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

func (c *Client) fetch(from, to models.Coordinate) (*models.RouteGeometry, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?overview=full&geometries=geojson",
		c.baseURL, from.Lon, from.Lat, to.Lon, to.Lat)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("routing: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("routing response read failed: %w", err)
	}

	var parsed osrmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("routing response decode failed: %w", err)
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return nil, ErrRouteNotFound
	}

	route := parsed.Routes[0]
	if len(route.Geometry.Coordinates) < 2 {
		return nil, ErrRouteNotFound
	}

	coords := make([]models.Coordinate, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		coords = append(coords, models.Coordinate{Lon: pair[0], Lat: pair[1]})
	}

	return &models.RouteGeometry{
		Coordinates: coords,
		Duration:    route.Duration,
		Distance:    route.Distance,
	}, nil
}
