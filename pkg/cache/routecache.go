package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/abryazgin/fuelroute/internal/routing"
)

// RouteCache is a specialized cache for FindPath results, keyed by
// RouteHash so that identical roadmap/truck-state inputs never recompute.
type RouteCache struct {
	cache      Cache
	defaultTTL time.Duration
}

// CachedRoute is the JSON-serializable form of a completed routing.Route.
type CachedRoute struct {
	Points     []CachedRoutePoint `json:"points"`
	Refuels    []CachedRefuel     `json:"refuels"`
	Cost       string             `json:"cost"`
	ComputedAt time.Time          `json:"computed_at"`
}

// CachedRoutePoint mirrors routing.RoutePoint.
type CachedRoutePoint struct {
	Node   string `json:"node"`
	Number int    `json:"number"`
}

// CachedRefuel mirrors routing.Refuel.
type CachedRefuel struct {
	Node   string `json:"node"`
	Number int    `json:"number"`
	Volume string `json:"volume"`
}

// NewRouteCache creates a cache for FindPath results.
func NewRouteCache(cache Cache, defaultTTL time.Duration) *RouteCache {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	return &RouteCache{
		cache:      cache,
		defaultTTL: defaultTTL,
	}
}

// Get looks up a previously cached route for the given inputs. The second
// return value is false on a cache miss; a corrupt cache entry is treated
// as a miss and removed.
func (rc *RouteCache) Get(ctx context.Context, roadmap *routing.Graph, from, to routing.Node, across []routing.Node, truck routing.TruckState) (*CachedRoute, bool, error) {
	key := BuildRouteKey(RouteHash(roadmap, from, to, across, truck))

	data, err := rc.cache.Get(ctx, key)
	if err != nil {
		if err == ErrKeyNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	var result CachedRoute
	if err := json.Unmarshal(data, &result); err != nil {
		_ = rc.cache.Delete(ctx, key) //nolint:errcheck // best effort cleanup
		return nil, false, nil
	}

	return &result, true, nil
}

// Set stores route as the cached result for the given inputs.
func (rc *RouteCache) Set(ctx context.Context, roadmap *routing.Graph, from, to routing.Node, across []routing.Node, truck routing.TruckState, route routing.Route, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = rc.defaultTTL
	}

	key := BuildRouteKey(RouteHash(roadmap, from, to, across, truck))
	cached := ToCachedRoute(route)

	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}

	return rc.cache.Set(ctx, key, data, ttl)
}

// Invalidate removes the cached result for the given inputs, if any.
func (rc *RouteCache) Invalidate(ctx context.Context, roadmap *routing.Graph, from, to routing.Node, across []routing.Node, truck routing.TruckState) error {
	key := BuildRouteKey(RouteHash(roadmap, from, to, across, truck))
	return rc.cache.Delete(ctx, key)
}

// InvalidateAll removes every cached route result.
func (rc *RouteCache) InvalidateAll(ctx context.Context) (int64, error) {
	return rc.cache.DeleteByPattern(ctx, "route:*")
}

// ToCachedRoute converts a routing.Route into its JSON-serializable form.
func ToCachedRoute(route routing.Route) *CachedRoute {
	cached := &CachedRoute{
		Cost:       route.Cost.String(),
		ComputedAt: time.Now(),
	}
	for _, rp := range route.RoutePoints {
		cached.Points = append(cached.Points, CachedRoutePoint{Node: rp.Node.Name, Number: rp.Number})
	}
	for _, r := range route.FuelPool.RefuelList {
		cached.Refuels = append(cached.Refuels, CachedRefuel{
			Node:   r.RoutePoint.Node.Name,
			Number: r.RoutePoint.Number,
			Volume: r.Volume.String(),
		})
	}
	return cached
}

// TotalRefuelVolume sums every refuel's volume; useful for callers that
// want a quick summary without walking Refuels themselves.
func (r *CachedRoute) TotalRefuelVolume() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, rf := range r.Refuels {
		v, err := decimal.NewFromString(rf.Volume)
		if err != nil {
			return decimal.Zero, fmt.Errorf("refuel volume %q: %w", rf.Volume, err)
		}
		total = total.Add(v)
	}
	return total, nil
}
