// Package metrics provides Prometheus metrics for the classifier engine.
//
// Usage:
//
//	metrics.RegisterMetrics(prometheus.DefaultRegisterer, logger)
//	router.Use(metrics.HTTPMiddleware)
//	metrics.RecordClassification(core.Bitcoin, "engine")
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

const namespace = "wallet"

var (
	classificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "classifications_total",
			Help:      "Total number of classified addresses by resulting chain",
		},
		[]string{"chain", "source"},
	)

	watchlistAddresses = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "watchlist",
			Name:      "addresses",
			Help:      "Number of addresses currently stored in the watchlist",
		},
	)

	watchlistSyncsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "watchlist",
			Name:      "syncs_total",
			Help:      "Total number of watchlist feed sync attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordClassification counts one classification result.
func RecordClassification(chain core.Chain, source string) {
	classificationsTotal.WithLabelValues(chain.String(), source).Inc()
}

// SetWatchlistSize records the number of stored watchlist addresses.
func SetWatchlistSize(n int) {
	watchlistAddresses.Set(float64(n))
}

// RecordSync counts a sync attempt; outcome is "updated", "unchanged" or "failed".
func RecordSync(outcome string) {
	watchlistSyncsTotal.WithLabelValues(outcome).Inc()
}

// RegisterMetrics registers the Go, process, classifier, watchlist and HTTP
// collectors with reg.
func RegisterMetrics(reg prometheus.Registerer, logger *log.Entry) {
	registerIfNotExists(reg, collectors.NewGoCollector(), "go_collector", logger)
	registerIfNotExists(reg, collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), "process_collector", logger)
	registerIfNotExists(reg, classificationsTotal, "classifications_total", logger)
	registerIfNotExists(reg, watchlistAddresses, "watchlist_addresses", logger)
	registerIfNotExists(reg, watchlistSyncsTotal, "watchlist_syncs_total", logger)
	registerIfNotExists(reg, httpRequestsTotal, "http_requests_total", logger)
	registerIfNotExists(reg, httpRequestDuration, "http_request_duration", logger)
}

func registerIfNotExists(reg prometheus.Registerer, collector prometheus.Collector, name string, logger *log.Entry) {
	if err := reg.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegErr) {
			logger.Debugf("%s already registered", name)
		} else {
			logger.Errorf("Failed to register %s: %v", name, err)
		}
	}
}
