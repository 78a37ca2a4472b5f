// Package pipeline owns one end-to-end simulation run: station generation,
// demand network derivation, route loading and trip expansion. All state
// that used to be ambient (route cache, loaded flag, PRNG streams) lives on
// the Session so independent runs never share anything.
package pipeline

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/dutchev/chargemap/internal/models"
	"github.com/dutchev/chargemap/internal/network"
	"github.com/dutchev/chargemap/internal/rng"
	"github.com/dutchev/chargemap/internal/stations"
	"github.com/dutchev/chargemap/internal/trips"
)

// RouteSource supplies the route table for a set of station pairs, either
// from a precomputed store or by live resolution.
type RouteSource interface {
	Routes(ctx context.Context, pairs []PairRequest) (map[string]*models.RouteGeometry, error)
}

// PairRequest names one ordered station pair to resolve.
type PairRequest struct {
	Key  string
	From models.Coordinate
	To   models.Coordinate
}

// Seeds fixes the three independent PRNG streams of a run.
type Seeds struct {
	Stations int32
	Network  int32
	Trips    int32
}

// Session is a single simulation run. Stations and edges are generated at
// construction; routes are loaded once on demand and trips expanded from
// them.
type Session struct {
	seeds      Seeds
	loopLength float64
	source     RouteSource

	mu           sync.Mutex
	stations     []models.ChargingStation
	edges        []models.DemandEdge
	routes       map[string]*models.RouteGeometry
	trips        []models.Trip
	routesLoaded bool
	loading      bool
	generation   int
}

// NewSession generates the station set and demand network for the given
// seeds. source may be nil, in which case LoadRoutes yields an empty table
// and every edge expands to zero trips.
func NewSession(seeds Seeds, loopLength float64, source RouteSource) *Session {
	s := &Session{
		seeds:      seeds,
		loopLength: loopLength,
		source:     source,
		routes:     map[string]*models.RouteGeometry{},
	}
	s.generate()
	return s
}

func (s *Session) generate() {
	s.stations = stations.NewGenerator(rng.New(s.seeds.Stations)).Generate()
	s.edges = network.NewGenerator(rng.New(s.seeds.Network)).Build(s.stations)
}

// Stations returns the generated station set.
func (s *Session) Stations() []models.ChargingStation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stations
}

// Edges returns the demand network.
func (s *Session) Edges() []models.DemandEdge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edges
}

// Trips returns the expanded trips. Empty until LoadRoutes completes.
func (s *Session) Trips() []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trips
}

// Routes returns the loaded route table.
func (s *Session) Routes() map[string]*models.RouteGeometry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routes
}

// Status reports the load state for the consuming surface.
func (s *Session) Status() (loaded, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routesLoaded, s.loading
}

// LoadRoutes fetches the route table and expands trips. It runs at most
// once per session: concurrent and repeated calls while loaded or loading
// return immediately. A load that was started before a Reload discards
// its result instead of committing stale entities.
func (s *Session) LoadRoutes(ctx context.Context) error {
	s.mu.Lock()
	if s.routesLoaded || s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	gen := s.generation
	edges := s.edges
	tripSeed := s.seeds.Trips
	pairs := uniquePairs(edges)
	s.mu.Unlock()

	routes, err := s.fetchRoutes(ctx, pairs)
	if err != nil {
		s.mu.Lock()
		if s.generation == gen {
			s.loading = false
		}
		s.mu.Unlock()
		return err
	}

	expanded := trips.NewExpander(rng.New(tripSeed), trips.DefaultProfiles, s.loopLength).ExpandAll(edges, routes)

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return nil
	}
	s.routes = routes
	s.trips = expanded
	s.routesLoaded = true
	s.loading = false
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"routes": len(routes),
		"trips":  len(expanded),
		"edges":  len(edges),
	}).Info("Route table loaded and trips expanded")
	return nil
}

func (s *Session) fetchRoutes(ctx context.Context, pairs []PairRequest) (map[string]*models.RouteGeometry, error) {
	if s.source == nil {
		log.Warn("No route source configured; trips will be empty")
		return map[string]*models.RouteGeometry{}, nil
	}
	return s.source.Routes(ctx, pairs)
}

// PairRequests returns the ordered station pairs the current demand
// network needs routes for. Precompute runs use this to know what to
// resolve.
func (s *Session) PairRequests() []PairRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uniquePairs(s.edges)
}

// Reload regenerates the whole run under new seeds and re-expands trips
// from the already-loaded route table paired with fresh live data where
// available. Entities are regenerated wholesale, never mutated in place.
func (s *Session) Reload(ctx context.Context, seeds Seeds) error {
	s.mu.Lock()
	s.generation++
	s.seeds = seeds
	s.routesLoaded = false
	s.loading = false
	s.trips = nil
	s.routes = map[string]*models.RouteGeometry{}
	s.generate()
	s.mu.Unlock()

	return s.LoadRoutes(ctx)
}

// uniquePairs derives the ordered station pairs a route table needs: each
// edge's natural direction plus its reverse, since trips may run both ways.
// Order is deterministic (edge order, forward before reverse).
func uniquePairs(edges []models.DemandEdge) []PairRequest {
	seen := make(map[string]bool, 2*len(edges))
	var out []PairRequest
	add := func(from, to *models.ChargingStation) {
		key := models.RouteKey(from.ID, to.ID)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, PairRequest{Key: key, From: from.Coordinates, To: to.Coordinates})
	}
	for _, e := range edges {
		add(e.From, e.To)
		add(e.To, e.From)
	}
	return out
}
