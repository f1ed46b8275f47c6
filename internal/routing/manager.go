package routing

import "github.com/shopspring/decimal"

// RouteManager orchestrates route construction: Start seeds the pool with
// the initial single-node route, Move extends a route along one edge
// (delegating the fuel bookkeeping to FuelPoolAlgebra), and completion /
// dominance pruning decide whether an extended route survives.
type RouteManager struct {
	toPoint      Node
	acrossPoints nodeSet
	fuel         FuelPoolAlgebra
	pool         *RoutePool
	mpg          decimal.Decimal

	onImpossibleMove func(neighbor Node, from Route)
}

// NewRouteManager builds a manager targeting toPoint, requiring every node
// in acrossPoints to be visited, with a tank of the given capacity and fuel
// economy mpg. onImpossibleMove, if non-nil, is called for every leg Move
// rejects as unreachable — the search driver uses it to log the swallowed
// failure (spec.md §12, reproducing the original's logged print).
func NewRouteManager(toPoint Node, acrossPoints []Node, capacity, mpg decimal.Decimal, onImpossibleMove func(Node, Route)) *RouteManager {
	return &RouteManager{
		toPoint:          toPoint,
		acrossPoints:     newNodeSet(acrossPoints),
		fuel:             FuelPoolAlgebra{Capacity: capacity},
		pool:             NewRoutePool(),
		mpg:              mpg,
		onImpossibleMove: onImpossibleMove,
	}
}

// Start creates the length-1 Route at startNode with startUsableVolume fuel
// already in the tank. If startNode already satisfies the completion
// predicate — every mandatory waypoint visited and startNode is the
// destination — this is the zero-length-move boundary case (spec.md §8:
// across_points = ∅ and from_point == to_point) and the route is appended
// directly to completed instead of available.
func (m *RouteManager) Start(startNode Node, startUsableVolume decimal.Decimal) {
	startRP := RoutePoint{Node: startNode, Number: 1}
	pool := m.fuel.Start(startRP, startUsableVolume)
	pointsToAcross := m.acrossPoints
	if pointsToAcross.has(startNode) {
		pointsToAcross = pointsToAcross.without(startNode)
	}
	route := Route{
		RoutePoints:    []RoutePoint{startRP},
		FuelPool:       pool,
		PointsToAcross: pointsToAcross,
		End:            startNode,
		Cost:           pool.Cost,
		Length:         1,
	}

	if len(pointsToAcross) == 0 && startNode == m.toPoint {
		route.FuelPool = Finalize(route.FuelPool)
		m.pool.AppendCompleted(route)
		return
	}

	m.pool.AppendAvailable(route)
}

// PopAvailable pops the lowest-cost available route.
func (m *RouteManager) PopAvailable() (Route, error) {
	return m.pool.PopAvailable()
}

// GetCompleted peeks the lowest-cost completed route.
func (m *RouteManager) GetCompleted() (Route, error) {
	return m.pool.PeekCompleted()
}

// MoveOutcome classifies what happened to a route after Move, for the
// search driver's instrumentation (spec.md §8 Scenario D: dominance
// pruning must be observable by counting extensions).
type MoveOutcome int

const (
	// MoveExtended means the new route was appended to available.
	MoveExtended MoveOutcome = iota
	// MoveCompleted means the new route satisfied the completion
	// predicate and was appended to completed.
	MoveCompleted
	// MovePruned means the new route was discarded because a completed
	// route already costs no more.
	MovePruned
)

// Move extends prev along road, producing a new Route. If the leg's fuel
// need cannot be met it calls onImpossibleMove and returns ErrImpossibleMove
// — the caller (the search driver) is expected to swallow that and move on.
//
// A newly extended route is either:
//   - completed, if every mandatory waypoint has now been visited and the
//     new node is the destination (its fuel pool is finalized before being
//     stored);
//   - dominance-pruned and discarded, if the current cheapest completed
//     route already costs no more than the new route (cost is
//     non-decreasing along any extension, since prices and volumes are
//     never negative, so this route cannot possibly win);
//   - or appended to available, to be extended further later.
func (m *RouteManager) Move(prev Route, road Road) (MoveOutcome, error) {
	next := road.To
	nextRP := RoutePoint{Node: next, Number: prev.Length + 1}

	// DivRound at 28 decimal places: spec.md §4.3/§9 require a
	// fixed-precision decimal with >=28 significant digits so results
	// bitwise-match the hand-computed scenarios; decimal.Div's default
	// DivisionPrecision (16) is not enough.
	usedVolume := road.Length.DivRound(m.mpg, 28)
	nextPool, err := m.fuel.Advance(prev.FuelPool, usedVolume, nextRP)
	if err != nil {
		if m.onImpossibleMove != nil {
			m.onImpossibleMove(next, prev)
		}
		return 0, err
	}

	pointsToAcross := prev.PointsToAcross
	if pointsToAcross.has(next) {
		pointsToAcross = pointsToAcross.without(next)
	}

	newRoute := Route{
		RoutePoints:    append(append([]RoutePoint{}, prev.RoutePoints...), nextRP),
		FuelPool:       nextPool,
		PointsToAcross: pointsToAcross,
		End:            next,
		Cost:           nextPool.Cost,
		Length:         prev.Length + 1,
	}

	if len(pointsToAcross) == 0 && next == m.toPoint {
		newRoute.FuelPool = Finalize(newRoute.FuelPool)
		m.pool.AppendCompleted(newRoute)
		return MoveCompleted, nil
	}

	if completed, err := m.GetCompleted(); err == nil && completed.Cost.LessThanOrEqual(newRoute.Cost) {
		// A cheaper-or-equal completed route already exists; this partial
		// can never beat it (cost only grows with extension), so drop it
		// without appending anywhere.
		return MovePruned, nil
	}

	m.pool.AppendAvailable(newRoute)
	return MoveExtended, nil
}
