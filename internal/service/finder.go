// Package service wires internal/routing's search into the ambient stack:
// result caching, metrics, and structured logging, the way solver-svc's
// SolverService wraps its algorithms package.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abryazgin/fuelroute/internal/routing"
	"github.com/abryazgin/fuelroute/pkg/apperror"
	"github.com/abryazgin/fuelroute/pkg/cache"
	"github.com/abryazgin/fuelroute/pkg/logger"
	"github.com/abryazgin/fuelroute/pkg/metrics"
)

// Finder wraps routing.FindPath with cache-aside lookup, Prometheus
// instrumentation, and structured logging. The zero value is usable: a nil
// RouteCache disables caching and a nil Metrics falls back to metrics.Get().
type Finder struct {
	RouteCache *cache.RouteCache
	Metrics    *metrics.Metrics
	CacheTTL   time.Duration
}

// NewFinder builds a Finder backed by routeCache (nil disables caching) and
// the process-wide metrics.
func NewFinder(routeCache *cache.RouteCache, ttl time.Duration) *Finder {
	return &Finder{
		RouteCache: routeCache,
		Metrics:    metrics.Get(),
		CacheTTL:   ttl,
	}
}

// Find resolves the cheapest route from from to to across roadmap, visiting
// every node in across, given the truck's starting fuel state. It checks
// the route cache first, runs routing.FindPath on a miss, and populates the
// cache with the result before returning. When no route exists it returns
// an *apperror.Error with code apperror.CodeNoSolution wrapping
// routing.ErrNoSolution.
func (f *Finder) Find(ctx context.Context, roadmap *routing.Graph, from, to routing.Node, across []routing.Node, truck routing.TruckState) (*cache.CachedRoute, error) {
	runID := uuid.New().String()
	log := logger.WithRequestID(runID)

	if f.Metrics == nil {
		f.Metrics = metrics.Get()
	}

	if f.RouteCache != nil {
		if cached, found, err := f.RouteCache.Get(ctx, roadmap, from, to, across, truck); err != nil {
			log.Warn("route cache lookup failed", "error", err)
		} else if found {
			f.Metrics.RecordCacheHit("route")
			log.Info("route cache hit", "from", from.Name, "to", to.Name)
			return cached, nil
		} else {
			f.Metrics.RecordCacheMiss("route")
		}
	}

	f.Metrics.FindPathInFlight.Inc()
	defer f.Metrics.FindPathInFlight.Dec()

	start := time.Now()
	observer := newMetricsObserver(f.Metrics, log)
	route, err := routing.FindPath(roadmap, from, to, across, truck, observer)
	elapsed := time.Since(start)

	if err != nil {
		f.Metrics.RecordFindPath("no_solution", elapsed)
		log.Warn("find_path found no solution", "from", from.Name, "to", to.Name, "elapsed", elapsed)
		return nil, apperror.Wrap(err, apperror.CodeNoSolution, "no route satisfies the requested constraints")
	}

	f.Metrics.RecordFindPath("found", elapsed)
	log.Info("find_path completed", "from", from.Name, "to", to.Name, "cost", route.Cost.String(), "elapsed", elapsed)

	cached := cache.ToCachedRoute(route)

	if f.RouteCache != nil {
		if err := f.RouteCache.Set(ctx, roadmap, from, to, across, truck, route, f.CacheTTL); err != nil {
			log.Warn("failed to populate route cache", "error", err)
		}
	}

	return cached, nil
}
