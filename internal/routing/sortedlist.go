package routing

import "github.com/shopspring/decimal"

// sortedInsert inserts x into a, which must already be sorted ascending by
// key, at the first index i where key(x) < key(a[i]) — i.e. to the right of
// any element with an equal key (stable-append-on-tie). Binary search over
// [lo, hi) mirrors Python's bisect.insort, which the original implementation
// used directly.
//
// hi < 0 means len(a). lo must be non-negative; ErrInvalidArgument is
// returned otherwise, matching the original's ValueError.
func sortedInsert[T any](a []T, x T, lo, hi int, key func(T) decimal.Decimal) ([]T, error) {
	if lo < 0 {
		return a, ErrInvalidArgument
	}
	if hi < 0 {
		hi = len(a)
	}

	kx := key(x)
	for lo < hi {
		mid := (lo + hi) / 2
		if kx.LessThan(key(a[mid])) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	var zero T
	a = append(a, zero)
	copy(a[lo+1:], a[lo:len(a)-1])
	a[lo] = x
	return a, nil
}

// appendSorted inserts x into the full sorted slice a (lo=0, hi=len(a)).
func appendSorted[T any](a []T, x T, key func(T) decimal.Decimal) []T {
	a, err := sortedInsert(a, x, 0, -1, key)
	if err != nil {
		// lo is always 0 here; this cannot happen.
		panic(err)
	}
	return a
}
