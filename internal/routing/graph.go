package routing

import "github.com/shopspring/decimal"

// GasStation marks a Node as a refueling point. A Node without one cannot be
// refueled at, not even for free.
type GasStation struct {
	// Price is the cost per unit of fuel at this station. Must be > 0.
	Price decimal.Decimal
}

// Node is an opaque point in the road network. Two Nodes are the same node
// iff they compare equal, so callers should use a stable, comparable
// identity (typically a string name) rather than a pointer.
type Node struct {
	Name       string
	GasStation *GasStation
}

// HasStation reports whether fuel can be bought at n.
func (n Node) HasStation() bool {
	return n.GasStation != nil
}

// Road is a directed edge of the road network. Length is consumed as
// Length / mpg units of fuel when traversed.
type Road struct {
	From   Node
	To     Node
	Length decimal.Decimal
}

// Graph is a directed adjacency structure: for a node, iterate
// (neighbor, edge) pairs. At most one directed edge exists per ordered
// pair of nodes; adding an edge for a pair that already has one replaces it.
//
// Neighbor iteration order follows insertion order, matching the Python
// original's reliance on dict insertion order (CPython 3.7+) for
// reproducible search behavior — see IterNeighbors.
type Graph struct {
	adjacency map[Node]map[Node]Road
	order     map[Node][]Node
}

// NewGraph returns an empty Graph ready for AddEdge calls.
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[Node]map[Node]Road),
		order:     make(map[Node][]Node),
	}
}

// AddEdge inserts the directed edge from->to, or replaces it if one already
// exists for that ordered pair. Replacing an edge does not change its
// position in the neighbor iteration order.
func (g *Graph) AddEdge(from, to Node, edge Road) {
	neighbors, ok := g.adjacency[from]
	if !ok {
		neighbors = make(map[Node]Road)
		g.adjacency[from] = neighbors
	}
	if _, exists := neighbors[to]; !exists {
		g.order[from] = append(g.order[from], to)
	}
	neighbors[to] = edge
}

// IterNeighbors returns the (neighbor, edge) pairs reachable directly from
// node, in the order their edges were first added. It is empty (not an
// error) for an unknown node or one with no out-edges.
func (g *Graph) IterNeighbors(node Node) []NeighborEdge {
	neighbors := g.adjacency[node]
	order := g.order[node]
	result := make([]NeighborEdge, 0, len(order))
	for _, to := range order {
		result = append(result, NeighborEdge{To: to, Edge: neighbors[to]})
	}
	return result
}

// NeighborEdge pairs a neighboring node with the edge that reaches it.
type NeighborEdge struct {
	To   Node
	Edge Road
}

// Nodes returns every node that has at least one out-edge, in no
// particular order. Used by callers that need to enumerate the graph
// itself (e.g. building a canonical cache key) rather than walk it.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.order))
	for n := range g.order {
		nodes = append(nodes, n)
	}
	return nodes
}
