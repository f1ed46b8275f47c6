package service

import (
	"log/slog"

	"github.com/abryazgin/fuelroute/internal/routing"
	"github.com/abryazgin/fuelroute/pkg/metrics"
)

// metricsObserver drives pkg/metrics counters off routing.FindPath's search
// events, logs each impossible move at debug level, and logs the search's
// exhaustion at info level. This is the concrete instrumentation spec.md
// describes only as an interface.
type metricsObserver struct {
	metrics *metrics.Metrics
	log     *slog.Logger
}

func newMetricsObserver(m *metrics.Metrics, log *slog.Logger) *metricsObserver {
	return &metricsObserver{metrics: m, log: log}
}

func (o *metricsObserver) RouteExtended() {
	o.metrics.RoutesExtendedTotal.Inc()
}

func (o *metricsObserver) RoutePruned() {
	o.metrics.RoutesPrunedTotal.Inc()
}

func (o *metricsObserver) RouteCompleted() {
	o.metrics.RoutesCompletedTotal.Inc()
}

func (o *metricsObserver) ImpossibleMove(neighbor routing.Node, from routing.Route) {
	o.metrics.ImpossibleMovesTotal.WithLabelValues(neighbor.Name).Inc()
	o.log.Debug("impossible move", "neighbor", neighbor.Name, "route_end", from.End.Name, "route_cost", from.Cost.String())
}

func (o *metricsObserver) SearchExhausted(outcome string) {
	o.log.Info("search ended", "outcome", outcome)
}
