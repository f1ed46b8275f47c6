package routing

import "github.com/shopspring/decimal"

// Vehicle describes the truck's tank and consumption characteristics.
// Capacity must be strictly greater than MinVolume; Mpg must be > 0.
type Vehicle struct {
	// Capacity is the total usable tank volume.
	Capacity decimal.Decimal
	// MinVolume is a reserve that is never spendable.
	MinVolume decimal.Decimal
	// Mpg is miles (or map-units) per unit of fuel; Road.Length / Mpg gives
	// the fuel consumed traversing that road.
	Mpg decimal.Decimal
}

// TruckState is a Vehicle plus its current fuel volume.
type TruckState struct {
	Truck  Vehicle
	Volume decimal.Decimal
}

// UsableVolume returns the fuel available for spending right now:
// Volume - Truck.MinVolume. The caller (FindPath) is responsible for this
// subtraction; negative results are a precondition violation.
func (t TruckState) UsableVolume() decimal.Decimal {
	return t.Volume.Sub(t.Truck.MinVolume)
}
