// Package routestore persists the precomputed route table: a flat mapping
// from route key to resolved geometry. Missing keys are expected steady
// state (those edges simply produce no trips), so Load never fails on a
// sparse table.
package routestore

import (
	"context"

	"github.com/dutchev/chargemap/internal/models"
)

// Store reads and writes a route table. Both implementations round-trip
// exactly: every key present at save time loads back with an equal
// geometry.
type Store interface {
	Save(ctx context.Context, table map[string]*models.RouteGeometry) error
	Load(ctx context.Context) (map[string]*models.RouteGeometry, error)
}
