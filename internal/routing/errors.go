package routing

import "errors"

// Sentinel errors for the search internals. Only ErrNoSolution is meant to
// cross the package boundary; the rest are control-flow signals the search
// driver and RouteManager handle locally (see §7 of the design notes).
var (
	// ErrImpossibleMove is returned by FuelPool.advance when the volume
	// needed for a leg cannot be covered by existing fuel plus whatever is
	// still purchasable from upstream stations. Non-fatal: the driver
	// abandons that branch and tries the next neighbor.
	ErrImpossibleMove = errors.New("routing: impossible move")

	// ErrNoAvailableRoutes is returned by RoutePool.PopAvailable when the
	// available collection is empty. This is the normal search-termination
	// signal, never propagated past the driver.
	ErrNoAvailableRoutes = errors.New("routing: no available routes")

	// ErrNoCompletedRoutes is returned by RoutePool.PeekCompleted when no
	// route has ever satisfied the completion predicate.
	ErrNoCompletedRoutes = errors.New("routing: no completed routes")

	// ErrInvalidArgument signals a programmer error, e.g. a negative lower
	// bound passed to sortedInsert.
	ErrInvalidArgument = errors.New("routing: invalid argument")

	// ErrNoSolution is the only error FindPath returns to callers: no
	// completed route satisfying the waypoints and fuel constraint exists.
	ErrNoSolution = errors.New("routing: no solution")
)
