package routing

import "github.com/shopspring/decimal"

// RoutePool holds the three price-ordered collections of routes the search
// driver works with:
//
//   - Available — partial routes still eligible for extension.
//   - Completed — routes that have reached the destination with every
//     mandatory waypoint visited.
//   - Closed — reserved for future dedup pruning; written but never read
//     by this package (see spec.md §9).
//
// All three are kept sorted by ascending order key (-cost), so the
// lowest-cost route is always at the tail and Pop is O(1); insertion finds
// its index by binary search and then shifts the tail, so it is O(n).
type RoutePool struct {
	available []Route
	completed []Route
	closed    []Route
}

// NewRoutePool returns an empty RoutePool.
func NewRoutePool() *RoutePool {
	return &RoutePool{}
}

// orderKey is the sort key shared by all three collections: -cost, so that
// ascending order places the cheapest route last.
func orderKey(r Route) decimal.Decimal {
	return r.Cost.Neg()
}

// AppendAvailable inserts r into the available collection in sorted order.
func (p *RoutePool) AppendAvailable(r Route) {
	p.available = appendSorted(p.available, r, orderKey)
}

// AppendCompleted inserts r into the completed collection in sorted order.
func (p *RoutePool) AppendCompleted(r Route) {
	p.completed = appendSorted(p.completed, r, orderKey)
}

// AppendClosed inserts r into the closed collection in sorted order.
//
// TODO: nothing reads closed yet; wire in once duplicate-route detection
// lands.
func (p *RoutePool) AppendClosed(r Route) {
	p.closed = appendSorted(p.closed, r, orderKey)
}

// PopAvailable removes and returns the lowest-cost available route.
// Returns ErrNoAvailableRoutes if the collection is empty.
func (p *RoutePool) PopAvailable() (Route, error) {
	if len(p.available) == 0 {
		return Route{}, ErrNoAvailableRoutes
	}
	last := len(p.available) - 1
	r := p.available[last]
	p.available = p.available[:last]
	return r, nil
}

// PeekCompleted returns the lowest-cost completed route without removing
// it. Returns ErrNoCompletedRoutes if none exists.
func (p *RoutePool) PeekCompleted() (Route, error) {
	if len(p.completed) == 0 {
		return Route{}, ErrNoCompletedRoutes
	}
	return p.completed[len(p.completed)-1], nil
}
