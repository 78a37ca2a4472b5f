package pipeline

import (
	"context"
	"time"

	"github.com/dutchev/chargemap/internal/models"
	"github.com/dutchev/chargemap/internal/routestore"
	"github.com/dutchev/chargemap/internal/routing"
)

// StoreSource serves the route table from a precomputed store. Pairs with
// no entry in the store are simply absent from the result.
type StoreSource struct {
	Store routestore.Store
}

// Routes loads the persisted table. The pair list is ignored: the store
// holds exactly what the precompute run resolved.
func (s *StoreSource) Routes(ctx context.Context, _ []PairRequest) (map[string]*models.RouteGeometry, error) {
	return s.Store.Load(ctx)
}

// LiveSource resolves pairs against the routing service with bounded
// concurrency.
type LiveSource struct {
	Client    *routing.Client
	BatchSize int
	Pause     time.Duration
}

// Routes resolves every pair. Unresolvable pairs are dropped from the
// result, not surfaced as errors.
func (s *LiveSource) Routes(ctx context.Context, pairs []PairRequest) (map[string]*models.RouteGeometry, error) {
	requests := make([]routing.Pair, len(pairs))
	for i, p := range pairs {
		requests[i] = routing.Pair{Key: p.Key, From: p.From, To: p.To}
	}
	result := s.Client.ResolveBatch(ctx, requests, s.BatchSize, s.Pause, nil)
	return result.Resolved, nil
}
