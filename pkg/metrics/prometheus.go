package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the process-wide metrics container for the search driver.
type Metrics struct {
	// Search instrumentation (§8 Scenario D: dominance pruning is
	// verifiable by reading these counters directly, not just by
	// inspecting the returned route).
	RoutesExtendedTotal  prometheus.Counter
	RoutesPrunedTotal    prometheus.Counter
	RoutesCompletedTotal prometheus.Counter
	ImpossibleMovesTotal *prometheus.CounterVec

	FindPathDuration *prometheus.HistogramVec

	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	FindPathInFlight prometheus.Gauge

	// Информация о сервисе
	ServiceInfo *prometheus.GaugeVec
}

var defaultMetrics *Metrics

// InitMetrics инициализирует метрики
func InitMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		RoutesExtendedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "routes_extended_total",
				Help:      "Total number of partial routes extended by the search",
			},
		),

		RoutesPrunedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "routes_pruned_total",
				Help:      "Total number of partial routes discarded by dominance pruning",
			},
		),

		RoutesCompletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "routes_completed_total",
				Help:      "Total number of routes that reached the destination",
			},
		),

		ImpossibleMovesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "impossible_moves_total",
				Help:      "Total number of moves rejected for insufficient fuel, by destination node",
			},
			[]string{"node"},
		),

		FindPathDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "find_path_duration_seconds",
				Help:      "Duration of FindPath calls",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"outcome"},
		),

		CacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cache_hits_total",
				Help:      "Total number of route cache hits",
			},
			[]string{"cache"},
		),

		CacheMissesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cache_misses_total",
				Help:      "Total number of route cache misses",
			},
			[]string{"cache"},
		),

		FindPathInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "find_path_in_flight",
				Help:      "Current number of FindPath calls being processed",
			},
		),

		ServiceInfo: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "service_info",
				Help:      "Service information",
			},
			[]string{"version", "environment"},
		),
	}

	prometheus.MustRegister(NewRuntimeCollector(namespace, subsystem))

	defaultMetrics = m
	return m
}

// Get возвращает глобальные метрики
func Get() *Metrics {
	if defaultMetrics == nil {
		return InitMetrics("fuelroute", "")
	}
	return defaultMetrics
}

// RecordFindPath records the outcome and duration of a FindPath call.
// outcome is "found" or "no_solution".
func (m *Metrics) RecordFindPath(outcome string, duration time.Duration) {
	m.FindPathDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordCacheHit records a route cache hit for the named cache.
func (m *Metrics) RecordCacheHit(cache string) {
	m.CacheHitsTotal.WithLabelValues(cache).Inc()
}

// RecordCacheMiss records a route cache miss for the named cache.
func (m *Metrics) RecordCacheMiss(cache string) {
	m.CacheMissesTotal.WithLabelValues(cache).Inc()
}

// SetServiceInfo устанавливает информацию о сервисе
func (m *Metrics) SetServiceInfo(version, environment string) {
	m.ServiceInfo.WithLabelValues(version, environment).Set(1)
}

// Handler возвращает HTTP handler для /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartMetricsServer запускает HTTP сервер для метрик
func StartMetricsServer(port int, path string) error {
	if path == "" {
		path = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(path, Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		// Игнорируем ошибку записи - response уже отправлен
		_, _ = w.Write([]byte("OK")) //nolint:errcheck // health endpoint, ошибка записи не критична
	})

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return server.ListenAndServe()
}
