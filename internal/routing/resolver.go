package routing

import (
	"context"
	"sync"
	"time"

	"github.com/dutchev/chargemap/internal/models"
)

// Pair is one route-key request: the ordered station pair's key plus its
// endpoint coordinates.
type Pair struct {
	Key  string
	From models.Coordinate
	To   models.Coordinate
}

// BatchResult collects the outcome of a batch resolution run.
type BatchResult struct {
	Resolved map[string]*models.RouteGeometry
	Failed   []string
}

// ResolveBatch resolves all pairs with bounded concurrency: batchSize
// in-flight requests at a time, with an inter-batch pause to stay polite
// toward the external service. Completion order within a batch is
// irrelevant because results are keyed by route key. The context can be
// cancelled between batches; the partial result stays valid.
func (c *Client) ResolveBatch(ctx context.Context, pairs []Pair, batchSize int, pause time.Duration, progress func(resolved, failed, total int)) BatchResult {
	if batchSize <= 0 {
		batchSize = 3
	}

	result := BatchResult{Resolved: make(map[string]*models.RouteGeometry, len(pairs))}
	var mu sync.Mutex

	for start := 0; start < len(pairs); start += batchSize {
		if ctx.Err() != nil {
			break
		}
		end := start + batchSize
		if end > len(pairs) {
			end = len(pairs)
		}

		var wg sync.WaitGroup
		for _, p := range pairs[start:end] {
			wg.Add(1)
			go func(p Pair) {
				defer wg.Done()
				geom, err := c.Resolve(p.From, p.To)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					result.Failed = append(result.Failed, p.Key)
					return
				}
				result.Resolved[p.Key] = geom
			}(p)
		}
		wg.Wait()

		if progress != nil {
			progress(len(result.Resolved), len(result.Failed), len(pairs))
		}
		if end < len(pairs) && pause > 0 {
			c.sleep(pause)
		}
	}
	return result
}
