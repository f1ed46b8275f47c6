package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/abryazgin/fuelroute/internal/routing"
	"github.com/abryazgin/fuelroute/pkg/config"
)

// roadmapFile is the on-disk description of a fuel-routing problem: the
// node set with optional gas station prices, the directed roads between
// them, the truck's tank, and the start/destination/waypoint names.
type roadmapFile struct {
	Nodes       []roadmapNode `json:"nodes"`
	Roads       []roadmapRoad `json:"roads"`
	Truck       roadmapTruck  `json:"truck"`
	Start       string        `json:"start"`
	Destination string        `json:"destination"`
	Across      []string      `json:"across"`
}

type roadmapNode struct {
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
}

type roadmapRoad struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Length string `json:"length"`
}

// roadmapTruck's Capacity/MinVolume/Mpg fall back to the configured
// search defaults (pkg/config.SearchConfig) when left blank; Volume (the
// truck's starting fuel) has no sensible default and is always required.
type roadmapTruck struct {
	Capacity  string `json:"capacity,omitempty"`
	MinVolume string `json:"min_volume,omitempty"`
	Mpg       string `json:"mpg,omitempty"`
	Volume    string `json:"volume"`
}

// loadRoadmap reads and decodes a roadmapFile from path.
func loadRoadmap(path string) (*roadmapFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roadmap file: %w", err)
	}

	var rf roadmapFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("decode roadmap file: %w", err)
	}
	return &rf, nil
}

// build converts the decoded file into the internal/routing types needed to
// call FindPath: the graph, the named start/destination/waypoint nodes, and
// the truck's starting state. Truck capacity, min volume, and mpg fall back
// to searchDefaults when the roadmap file leaves them blank.
func (rf *roadmapFile) build(searchDefaults config.SearchConfig) (*routing.Graph, routing.Node, routing.Node, []routing.Node, routing.TruckState, error) {
	nodesByName := make(map[string]routing.Node, len(rf.Nodes))
	for _, n := range rf.Nodes {
		node := routing.Node{Name: n.Name}
		if n.Price != "" {
			price, err := decimal.NewFromString(n.Price)
			if err != nil {
				return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("node %q price: %w", n.Name, err)
			}
			node.GasStation = &routing.GasStation{Price: price}
		}
		nodesByName[n.Name] = node
	}

	graph := routing.NewGraph()
	for _, r := range rf.Roads {
		from, ok := nodesByName[r.From]
		if !ok {
			return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("road references unknown node %q", r.From)
		}
		to, ok := nodesByName[r.To]
		if !ok {
			return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("road references unknown node %q", r.To)
		}
		length, err := decimal.NewFromString(r.Length)
		if err != nil {
			return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("road %s->%s length: %w", r.From, r.To, err)
		}
		graph.AddEdge(from, to, routing.Road{From: from, To: to, Length: length})
	}

	start, ok := nodesByName[rf.Start]
	if !ok {
		return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("start references unknown node %q", rf.Start)
	}
	destination, ok := nodesByName[rf.Destination]
	if !ok {
		return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("destination references unknown node %q", rf.Destination)
	}

	across := make([]routing.Node, 0, len(rf.Across))
	for _, name := range rf.Across {
		node, ok := nodesByName[name]
		if !ok {
			return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("across references unknown node %q", name)
		}
		across = append(across, node)
	}

	capacityStr := rf.Truck.Capacity
	if capacityStr == "" {
		capacityStr = searchDefaults.DefaultTankCapacity
	}
	capacity, err := decimal.NewFromString(capacityStr)
	if err != nil {
		return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("truck capacity: %w", err)
	}

	minVolumeStr := rf.Truck.MinVolume
	if minVolumeStr == "" {
		minVolumeStr = searchDefaults.DefaultMinVolume
	}
	minVolume, err := decimal.NewFromString(minVolumeStr)
	if err != nil {
		return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("truck min_volume: %w", err)
	}

	mpgStr := rf.Truck.Mpg
	if mpgStr == "" {
		mpgStr = searchDefaults.DefaultMpg
	}
	mpg, err := decimal.NewFromString(mpgStr)
	if err != nil {
		return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("truck mpg: %w", err)
	}
	volume, err := decimal.NewFromString(rf.Truck.Volume)
	if err != nil {
		return nil, routing.Node{}, routing.Node{}, nil, routing.TruckState{}, fmt.Errorf("truck volume: %w", err)
	}

	truck := routing.TruckState{
		Truck: routing.Vehicle{
			Capacity:  capacity,
			MinVolume: minVolume,
			Mpg:       mpg,
		},
		Volume: volume,
	}

	return graph, start, destination, across, truck, nil
}
