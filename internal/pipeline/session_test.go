package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutchev/chargemap/internal/models"
)

var testSeeds = Seeds{Stations: 42, Network: 1337, Trips: 2024}

// stubSource counts calls and serves a synthetic table covering every
// requested pair.
type stubSource struct {
	calls int32
}

func (s *stubSource) Routes(ctx context.Context, pairs []PairRequest) (map[string]*models.RouteGeometry, error) {
	atomic.AddInt32(&s.calls, 1)
	table := make(map[string]*models.RouteGeometry, len(pairs))
	for _, p := range pairs {
		table[p.Key] = &models.RouteGeometry{
			Coordinates: []models.Coordinate{p.From, p.To},
			Duration:    1800,
			Distance:    30000,
		}
	}
	return table, nil
}

func TestSessionGeneratesNetworkUpfront(t *testing.T) {
	s := NewSession(testSeeds, 1800, nil)

	assert.NotEmpty(t, s.Stations())
	assert.NotEmpty(t, s.Edges())
	assert.Empty(t, s.Trips())

	loaded, loading := s.Status()
	assert.False(t, loaded)
	assert.False(t, loading)
}

func TestSessionDeterministic(t *testing.T) {
	a := NewSession(testSeeds, 1800, nil)
	b := NewSession(testSeeds, 1800, nil)

	assert.Equal(t, a.Stations(), b.Stations())
	require.Equal(t, len(a.Edges()), len(b.Edges()))
}

func TestLoadRoutesOnce(t *testing.T) {
	source := &stubSource{}
	s := NewSession(testSeeds, 1800, source)

	require.NoError(t, s.LoadRoutes(context.Background()))
	require.NoError(t, s.LoadRoutes(context.Background()))

	assert.Equal(t, int32(1), atomic.LoadInt32(&source.calls), "second load must be suppressed")
	loaded, loading := s.Status()
	assert.True(t, loaded)
	assert.False(t, loading)
	assert.NotEmpty(t, s.Trips())
}

func TestLoadRoutesConcurrentCallsSuppressed(t *testing.T) {
	source := &stubSource{}
	s := NewSession(testSeeds, 1800, source)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.LoadRoutes(context.Background())
		}()
	}
	wg.Wait()
	// One call may still be in flight when the others return; wait for it.
	require.NoError(t, s.LoadRoutes(context.Background()))

	assert.Equal(t, int32(1), atomic.LoadInt32(&source.calls))
}

func TestLoadRoutesNilSource(t *testing.T) {
	s := NewSession(testSeeds, 1800, nil)

	require.NoError(t, s.LoadRoutes(context.Background()))

	loaded, _ := s.Status()
	assert.True(t, loaded)
	assert.Empty(t, s.Trips(), "no source means zero trips, not an error")
}

func TestSessionTripsWellFormed(t *testing.T) {
	s := NewSession(testSeeds, 1800, &stubSource{})
	require.NoError(t, s.LoadRoutes(context.Background()))

	trips := s.Trips()
	require.NotEmpty(t, trips)
	for _, trip := range trips {
		require.NotEmpty(t, trip.Waypoints)
		for i := 1; i < len(trip.Waypoints); i++ {
			assert.GreaterOrEqual(t, trip.Waypoints[i].Timestamp, trip.Waypoints[i-1].Timestamp)
		}
	}
}

func TestReloadRegeneratesWholesale(t *testing.T) {
	source := &stubSource{}
	s := NewSession(testSeeds, 1800, source)
	require.NoError(t, s.LoadRoutes(context.Background()))
	before := s.Trips()

	require.NoError(t, s.Reload(context.Background(), Seeds{Stations: 7, Network: 8, Trips: 9}))
	after := s.Trips()

	require.NotEmpty(t, after)
	assert.NotEqual(t, before, after)
	assert.Equal(t, int32(2), atomic.LoadInt32(&source.calls))
}

// gatedSource blocks its first call until released and tags each call's
// table with a distinct route key.
type gatedSource struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	started chan struct{}
}

func (g *gatedSource) Routes(ctx context.Context, _ []PairRequest) (map[string]*models.RouteGeometry, error) {
	g.mu.Lock()
	g.calls++
	n := g.calls
	g.mu.Unlock()
	if n == 1 {
		close(g.started)
		<-g.release
	}
	key := fmt.Sprintf("call-%d", n)
	return map[string]*models.RouteGeometry{key: {Duration: 60, Distance: 1000}}, nil
}

func TestReloadSupersedesInFlightLoad(t *testing.T) {
	source := &gatedSource{release: make(chan struct{}), started: make(chan struct{})}
	s := NewSession(testSeeds, 1800, source)

	done := make(chan error, 1)
	go func() { done <- s.LoadRoutes(context.Background()) }()
	<-source.started

	// The reload's own load (call 2) completes immediately; the stale
	// load (call 1) finishes afterwards and must not clobber it.
	require.NoError(t, s.Reload(context.Background(), Seeds{Stations: 7, Network: 8, Trips: 9}))
	close(source.release)
	require.NoError(t, <-done)

	routes := s.Routes()
	assert.Contains(t, routes, "call-2")
	assert.NotContains(t, routes, "call-1", "stale load committed over the reload result")
	loaded, loading := s.Status()
	assert.True(t, loaded)
	assert.False(t, loading)
}

func TestUniquePairsIncludeReverse(t *testing.T) {
	s := NewSession(testSeeds, 1800, nil)
	pairs := uniquePairs(s.Edges())

	keys := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		assert.False(t, keys[p.Key], "duplicate pair %s", p.Key)
		keys[p.Key] = true
	}
	for _, e := range s.Edges() {
		assert.True(t, keys[models.RouteKey(e.From.ID, e.To.ID)])
		assert.True(t, keys[models.RouteKey(e.To.ID, e.From.ID)], "reverse pair missing for %s->%s", e.From.ID, e.To.ID)
	}
}

func TestRouteKeyAsymmetry(t *testing.T) {
	assert.NotEqual(t, models.RouteKey("station-1", "station-2"), models.RouteKey("station-2", "station-1"))
	assert.Equal(t, models.RouteKey("station-1", "station-2"), models.RouteKey("station-1", "station-2"))
}
