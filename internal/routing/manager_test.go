package routing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteManager_Start_SeedsAvailable(t *testing.T) {
	s := Node{Name: "S"}
	m := NewRouteManager(Node{Name: "T"}, nil, d("10"), d("1"), nil)
	m.Start(s, d("5"))

	route, err := m.PopAvailable()
	require.NoError(t, err)
	assert.Equal(t, s, route.End)
	assert.Equal(t, 1, route.Length)
	assert.True(t, route.Cost.Equal(decimal.Zero))
}

func TestRouteManager_Start_CompletesImmediatelyWhenStartIsDestination(t *testing.T) {
	s := Node{Name: "S"}
	m := NewRouteManager(s, nil, d("10"), d("1"), nil)
	m.Start(s, d("5"))

	_, err := m.PopAvailable()
	assert.ErrorIs(t, err, ErrNoAvailableRoutes)

	completed, err := m.GetCompleted()
	require.NoError(t, err)
	assert.Equal(t, s, completed.End)
	assert.Equal(t, 1, completed.Length)
	assert.True(t, completed.Cost.Equal(decimal.Zero))
}

func TestRouteManager_Move_ImpossibleCallsHook(t *testing.T) {
	s := Node{Name: "S"}
	b := Node{Name: "B"}
	var gotNeighbor Node
	var hookCalled bool
	m := NewRouteManager(Node{Name: "T"}, nil, d("5"), d("1"), func(n Node, from Route) {
		hookCalled = true
		gotNeighbor = n
	})
	m.Start(s, d("0"))
	route, err := m.PopAvailable()
	require.NoError(t, err)

	_, err = m.Move(route, Road{From: s, To: b, Length: d("100")})
	assert.ErrorIs(t, err, ErrImpossibleMove)
	assert.True(t, hookCalled)
	assert.Equal(t, b, gotNeighbor)
}

func TestRouteManager_Move_CompletesAtDestination(t *testing.T) {
	s := Node{Name: "S"}
	dest := Node{Name: "T"}
	m := NewRouteManager(dest, nil, d("10"), d("1"), nil)
	m.Start(s, d("10"))
	route, err := m.PopAvailable()
	require.NoError(t, err)

	outcome, err := m.Move(route, Road{From: s, To: dest, Length: d("3")})
	require.NoError(t, err)
	assert.Equal(t, MoveCompleted, outcome)

	completed, err := m.GetCompleted()
	require.NoError(t, err)
	assert.Equal(t, dest, completed.End)
}

func TestRouteManager_Move_RequiresAllWaypointsBeforeCompleting(t *testing.T) {
	s := Node{Name: "S"}
	w := Node{Name: "W"}
	dest := Node{Name: "T"}
	m := NewRouteManager(dest, []Node{w}, d("10"), d("1"), nil)
	m.Start(s, d("10"))
	route, err := m.PopAvailable()
	require.NoError(t, err)

	outcome, err := m.Move(route, Road{From: s, To: dest, Length: d("3")})
	require.NoError(t, err)
	assert.Equal(t, MoveExtended, outcome, "must not complete without visiting the mandatory waypoint")

	_, err = m.GetCompleted()
	assert.ErrorIs(t, err, ErrNoCompletedRoutes)
}

func TestRouteManager_Move_UsesFixedPrecisionDivision(t *testing.T) {
	// mpg=24 against a station price of 3.17 (spec.md §8 Scenario A/B/C's
	// own numbers) never divides evenly; decimal's default DivisionPrecision
	// (16) would round the fuel volume before pricing it. 28 decimal places
	// is required so the cost matches the hand-computed scenarios exactly.
	mp1 := Node{Name: "MP1", GasStation: station("3.17")}
	mp2 := Node{Name: "MP2"}
	m := NewRouteManager(mp2, nil, d("500"), d("24"), nil)
	m.Start(mp1, d("0"))
	route, err := m.PopAvailable()
	require.NoError(t, err)

	outcome, err := m.Move(route, Road{From: mp1, To: mp2, Length: d("10")})
	require.NoError(t, err)
	assert.Equal(t, MoveCompleted, outcome)

	completed, err := m.GetCompleted()
	require.NoError(t, err)

	usedVolume := d("10").DivRound(d("24"), 28)
	require.Equal(t, "0.4166666666666666666666666667", usedVolume.String())
	wantCost := usedVolume.Mul(d("3.17"))
	assert.True(t, wantCost.Equal(completed.Cost), "want %s, got %s", wantCost, completed.Cost)
}

func TestRouteManager_Move_PrunesWhenCompletedAlreadyCheaper(t *testing.T) {
	s := Node{Name: "S"}
	dest := Node{Name: "T"}
	other := Node{Name: "M"}
	m := NewRouteManager(dest, nil, d("10"), d("1"), nil)
	m.Start(s, d("10"))
	route, err := m.PopAvailable()
	require.NoError(t, err)

	outcome, err := m.Move(route, Road{From: s, To: dest, Length: d("1")})
	require.NoError(t, err)
	require.Equal(t, MoveCompleted, outcome)

	// A second, merely-as-expensive partial extension can never beat the
	// free completed route already on hand.
	outcome, err = m.Move(route, Road{From: s, To: other, Length: d("1")})
	require.NoError(t, err)
	assert.Equal(t, MovePruned, outcome)
}
