package service

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/abryazgin/fuelroute/internal/routing"
	"github.com/abryazgin/fuelroute/pkg/logger"
)

func TestMetricsObserver_RecordsEvents(t *testing.T) {
	m := freshMetrics(t)
	obs := newMetricsObserver(m, logger.Log)

	obs.RouteExtended()
	obs.RouteExtended()
	obs.RouteCompleted()
	obs.RoutePruned()
	obs.ImpossibleMove(routing.Node{Name: "dest"}, routing.Route{End: routing.Node{Name: "s"}, Cost: d("0")})
	obs.SearchExhausted("found")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RoutesExtendedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RoutesCompletedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RoutesPrunedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ImpossibleMovesTotal.WithLabelValues("dest")))
}
