package routing

// SearchObserver receives best-effort instrumentation hooks from FindPath.
// pkg/metrics and pkg/logger wire real implementations on top of this (see
// internal/service.Finder); tests can wire a plain counter.
type SearchObserver interface {
	RouteExtended()
	RoutePruned()
	RouteCompleted()
	ImpossibleMove(neighbor Node, from Route)
	// SearchExhausted fires once, when the available-route pool has run dry
	// and FindPath is about to return. outcome is "found" or "no_solution".
	SearchExhausted(outcome string)
}

// noopObserver discards every event.
type noopObserver struct{}

func (noopObserver) RouteExtended()             {}
func (noopObserver) RoutePruned()               {}
func (noopObserver) RouteCompleted()            {}
func (noopObserver) ImpossibleMove(Node, Route) {}
func (noopObserver) SearchExhausted(string)     {}

// FindPath searches roadmap for the cheapest route from `from` to `to`
// that visits every node in across at least once, given the truck's fuel
// state. It implements the best-first search of spec.md §4.6: repeatedly
// pop the lowest-cost available route and extend it along every out-edge,
// until no available route remains, then return the cheapest completed
// route. Returns ErrNoSolution if no route ever completed.
func FindPath(roadmap *Graph, from, to Node, across []Node, truck TruckState, observer SearchObserver) (Route, error) {
	if observer == nil {
		observer = noopObserver{}
	}

	manager := NewRouteManager(to, across, truck.Truck.Capacity, truck.Truck.Mpg, observer.ImpossibleMove)
	manager.Start(from, truck.UsableVolume())

	for {
		route, err := manager.PopAvailable()
		if err != nil {
			// ErrNoAvailableRoutes: normal termination, never propagated.
			break
		}

		for _, ne := range roadmap.IterNeighbors(route.End) {
			outcome, moveErr := manager.Move(route, ne.Edge)
			if moveErr != nil {
				// ErrImpossibleMove: swallowed, this branch is unwalkable
				// for this fuel plan; other neighbors still get a try.
				continue
			}
			switch outcome {
			case MoveCompleted:
				observer.RouteCompleted()
			case MovePruned:
				observer.RoutePruned()
			default:
				observer.RouteExtended()
			}
		}
	}

	completed, err := manager.GetCompleted()
	if err != nil {
		observer.SearchExhausted("no_solution")
		return Route{}, ErrNoSolution
	}
	observer.SearchExhausted("found")
	return completed, nil
}
