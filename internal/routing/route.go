package routing

import "github.com/shopspring/decimal"

// Route is an immutable partial or complete walk from the start node.
// Extending a route produces a new Route whose RoutePoints is a fresh copy
// of the previous one plus the new point (see nodeSet below for the
// waypoint set, which is copy-on-remove since its size is the small, fixed
// count of mandatory waypoints).
type Route struct {
	RoutePoints    []RoutePoint
	FuelPool       FuelPool
	PointsToAcross nodeSet
	End            Node
	Cost           decimal.Decimal
	Length         int
}

// nodeSet is a small immutable set of Nodes. Removing an element returns a
// new set; the original is left untouched so sibling routes that still need
// the full waypoint set keep seeing it.
type nodeSet map[Node]struct{}

func newNodeSet(nodes []Node) nodeSet {
	s := make(nodeSet, len(nodes))
	for _, n := range nodes {
		s[n] = struct{}{}
	}
	return s
}

func (s nodeSet) has(n Node) bool {
	_, ok := s[n]
	return ok
}

func (s nodeSet) without(n Node) nodeSet {
	if !s.has(n) {
		return s
	}
	out := make(nodeSet, len(s)-1)
	for k := range s {
		if k != n {
			out[k] = struct{}{}
		}
	}
	return out
}
