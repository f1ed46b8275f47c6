package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/abryazgin/fuelroute/internal/routing"
)

// RouteHash computes a cache key for a FindPath call over roadmap, fixing
// the from/to/across nodes and the truck's fuel state. Equal inputs always
// hash equal; the roadmap is canonicalized independent of AddEdge call
// order, since Graph's own iteration order is insertion-order and must not
// leak into the cache key.
func RouteHash(roadmap *routing.Graph, from, to routing.Node, across []routing.Node, truck routing.TruckState) string {
	if roadmap == nil {
		return ""
	}

	data := roadmapToCanonical(roadmap, from, to, across, truck)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

func roadmapToCanonical(roadmap *routing.Graph, from, to routing.Node, across []routing.Node, truck routing.TruckState) []byte {
	type edgeData struct {
		from, to string
		length   string
	}

	// Graph.Nodes only returns nodes with an out-edge, so a node that is
	// only ever a destination (e.g. the final stop) would be missed; collect
	// every node identity seen anywhere — as a Nodes() entry, as an edge
	// endpoint, or as one of the call's own from/to/across arguments — so a
	// station's price is never silently dropped from the key.
	seen := make(map[string]routing.Node)
	record := func(n routing.Node) {
		// A station-less copy of a name (e.g. a bare from/to argument) must
		// not overwrite the priced node already recorded under that name.
		if prev, ok := seen[n.Name]; ok && prev.HasStation() && !n.HasStation() {
			return
		}
		seen[n.Name] = n
	}

	var edges []edgeData
	for _, node := range roadmap.Nodes() {
		record(node)
		for _, ne := range roadmap.IterNeighbors(node) {
			record(ne.To)
			edges = append(edges, edgeData{from: node.Name, to: ne.To.Name, length: ne.Edge.Length.String()})
		}
	}
	record(from)
	record(to)
	for _, n := range across {
		record(n)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})

	type nodeData struct {
		name  string
		price string
	}

	nodePrices := make([]nodeData, 0, len(seen))
	for name, n := range seen {
		price := "none"
		if n.HasStation() {
			price = n.GasStation.Price.String()
		}
		nodePrices = append(nodePrices, nodeData{name: name, price: price})
	}
	sort.Slice(nodePrices, func(i, j int) bool { return nodePrices[i].name < nodePrices[j].name })

	acrossNames := make([]string, len(across))
	for i, n := range across {
		acrossNames[i] = n.Name
	}
	sort.Strings(acrossNames)

	var result []byte
	result = append(result, []byte(fmt.Sprintf("from:%s;to:%s;across:%v;", from.Name, to.Name, acrossNames))...)
	result = append(result, []byte(fmt.Sprintf("cap:%s;min:%s;mpg:%s;vol:%s;",
		truck.Truck.Capacity.String(), truck.Truck.MinVolume.String(), truck.Truck.Mpg.String(), truck.Volume.String()))...)

	for _, n := range nodePrices {
		result = append(result, []byte(fmt.Sprintf("n:%s:%s;", n.name, n.price))...)
	}

	for _, e := range edges {
		result = append(result, []byte(fmt.Sprintf("e:%s:%s:%s;", e.from, e.to, e.length))...)
	}

	return result
}

// BuildRouteKey builds the cache key string for a hashed roadmap.
func BuildRouteKey(routeHash string) string {
	return fmt.Sprintf("route:%s", routeHash)
}
