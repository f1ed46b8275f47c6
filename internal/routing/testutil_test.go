package routing

import "github.com/shopspring/decimal"

// d parses a literal decimal string for test fixtures. Panics on malformed
// input — tests are expected to pass literals they control.
func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func station(price string) *GasStation {
	return &GasStation{Price: d(price)}
}
