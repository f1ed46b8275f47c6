package routing

import "github.com/shopspring/decimal"

// RoutePoint names a node together with the 1-based position at which a
// route visits it. A route may revisit the same node at different
// positions, so (Node, Number) rather than Node alone is the real identity
// the fuel pool tracks.
type RoutePoint struct {
	Node   Node
	Number int
}

// FuelPossibility is unspent purchase capacity at a previously visited gas
// station: PossibleVol is what remains purchasable retroactively from it,
// UsedVol is what has already been committed to it by earlier legs.
type FuelPossibility struct {
	RoutePoint  RoutePoint
	PossibleVol decimal.Decimal
	UsedVol     decimal.Decimal
}

// Refuel is a finalized, no-longer-changeable purchase: Volume units bought
// at RoutePoint.
type Refuel struct {
	RoutePoint RoutePoint
	Volume     decimal.Decimal
}

// FuelPool is the immutable per-route snapshot of retroactive refueling
// opportunities: existing (already-paid-for) fuel, the open queue of
// stations still able to sell more (ordered by ascending price), the
// frozen refuels already settled, and the cumulative cost of the route so
// far. Extending a route produces a new FuelPool; this one never mutates.
type FuelPool struct {
	ExistingFuelVol decimal.Decimal
	rfpQueue        []FuelPossibility
	RefuelList      []Refuel
	Cost            decimal.Decimal
}

// FuelPoolAlgebra implements the FuelPool operations (§4.3) for a fixed
// tank capacity: Start, Advance, and Finalize.
type FuelPoolAlgebra struct {
	Capacity decimal.Decimal
}

// Start builds the initial FuelPool at the route's first RoutePoint.
// startFuelVol must be in [0, Capacity]. If startRP's node has a station,
// the pool begins with one open possibility describing the headroom left
// in the tank — the start station can still be used to top up, even though
// startFuelVol was handed to the truck for free.
func (a FuelPoolAlgebra) Start(startRP RoutePoint, startFuelVol decimal.Decimal) FuelPool {
	pool := FuelPool{
		ExistingFuelVol: startFuelVol,
		Cost:            decimal.Zero,
	}
	if startRP.Node.HasStation() {
		pool.rfpQueue = []FuelPossibility{{
			RoutePoint:  startRP,
			PossibleVol: a.Capacity.Sub(startFuelVol),
			UsedVol:     decimal.Zero,
		}}
	}
	return pool
}

// Advance produces the FuelPool after consuming usedVolume to reach newRP.
// It drains existing fuel first, then buys the remainder from the open
// queue in ascending-price order, respecting each station's recorded
// headroom. Returns ErrImpossibleMove if the upstream stations cannot
// cover the leg. See §4.3 for the full algorithm and the Open Question in
// spec.md §9 about the volume recorded when a possibility is retired.
func (a FuelPoolAlgebra) Advance(prev FuelPool, usedVolume decimal.Decimal, newRP RoutePoint) (FuelPool, error) {
	cost := prev.Cost
	existingFuelVol := decimal.Max(prev.ExistingFuelVol.Sub(usedVolume), decimal.Zero)
	needed := decimal.Max(usedVolume.Sub(prev.ExistingFuelVol), decimal.Zero)

	rfpQueue := make([]FuelPossibility, 0, len(prev.rfpQueue))
	refuelList := make([]Refuel, len(prev.RefuelList), len(prev.RefuelList)+len(prev.rfpQueue))
	copy(refuelList, prev.RefuelList)

	alreadyReserved := decimal.Zero
	for _, rfp := range prev.rfpQueue {
		capLeft := decimal.Max(rfp.PossibleVol.Sub(alreadyReserved), decimal.Zero)
		take := decimal.Min(capLeft, needed)

		capLeft = capLeft.Sub(take)
		needed = needed.Sub(take)
		alreadyReserved = alreadyReserved.Add(take)
		usedVol := rfp.UsedVol.Add(take)
		cost = cost.Add(rfp.RoutePoint.Node.GasStation.Price.Mul(take))

		if capLeft.Sign() > 0 {
			rfpQueue = append(rfpQueue, FuelPossibility{
				RoutePoint:  rfp.RoutePoint,
				PossibleVol: capLeft,
				UsedVol:     usedVol,
			})
		} else {
			// Retired: frozen with this step's leg volume, not the
			// station's cumulative used volume — reproduced exactly as
			// the original does it (spec.md §9 Open Question).
			refuelList = append(refuelList, Refuel{
				RoutePoint: rfp.RoutePoint,
				Volume:     usedVolume,
			})
		}
	}

	if needed.Sign() != 0 {
		return FuelPool{}, ErrImpossibleMove
	}

	if newRP.Node.HasStation() {
		rfpQueue = appendSorted(rfpQueue, FuelPossibility{
			RoutePoint:  newRP,
			PossibleVol: a.Capacity.Sub(existingFuelVol),
			UsedVol:     decimal.Zero,
		}, func(p FuelPossibility) decimal.Decimal {
			return p.RoutePoint.Node.GasStation.Price
		})
	}

	return FuelPool{
		ExistingFuelVol: existingFuelVol,
		rfpQueue:        rfpQueue,
		RefuelList:      refuelList,
		Cost:            cost,
	}, nil
}

// Finalize flattens the surviving open queue into Refuel records and sorts
// the full refuel list ascending by position. It is a lossy compression
// applied only to a route accepted into the completed pool — ExistingFuelVol
// and Cost carry through unchanged.
func Finalize(pool FuelPool) FuelPool {
	refuels := make([]Refuel, 0, len(pool.rfpQueue)+len(pool.RefuelList))
	for _, rfp := range pool.rfpQueue {
		refuels = append(refuels, Refuel{RoutePoint: rfp.RoutePoint, Volume: rfp.UsedVol})
	}
	refuels = append(refuels, pool.RefuelList...)

	sortRefuelsByPosition(refuels)

	return FuelPool{
		ExistingFuelVol: pool.ExistingFuelVol,
		rfpQueue:        nil,
		RefuelList:      refuels,
		Cost:            pool.Cost,
	}
}

func sortRefuelsByPosition(refuels []Refuel) {
	// Small slices (one entry per visited station); insertion sort keeps
	// this dependency-free and stable, matching Python's sorted().
	for i := 1; i < len(refuels); i++ {
		for j := i; j > 0 && refuels[j].RoutePoint.Number < refuels[j-1].RoutePoint.Number; j-- {
			refuels[j], refuels[j-1] = refuels[j-1], refuels[j]
		}
	}
}
