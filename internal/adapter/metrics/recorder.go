// Package metrics exposes service measurements to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry with the storefront metrics:
//   - <ns>_storefront_evaluations_total{mode,profiled}
//   - <ns>_storefront_evaluation_duration_seconds{mode}
//   - <ns>_storefront_generated_offers{mode}
//   - <ns>_catalog_dangling_references_total
//   - <ns>_catalog_refreshes_total{result}
type Recorder struct {
	registry *prometheus.Registry

	evaluations        *prometheus.CounterVec
	evaluationDuration *prometheus.HistogramVec
	generatedOffers    *prometheus.HistogramVec
	danglingReferences prometheus.Counter
	catalogRefreshes   *prometheus.CounterVec
}

// NewRecorder creates and registers the metrics under namespace. Go runtime
// and process collectors are registered too.
func NewRecorder(namespace string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "storefront",
				Name:      "evaluations_total",
				Help:      "Total number of composed storefronts",
			},
			[]string{"mode", "profiled"},
		),
		evaluationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "storefront",
				Name:      "evaluation_duration_seconds",
				Help:      "Time to compose a storefront, catalog load included",
				Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 14),
			},
			[]string{"mode"},
		),
		generatedOffers: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "storefront",
				Name:      "generated_offers",
				Help:      "Number of rule-driven offers per evaluated profile",
				Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
			},
			[]string{"mode"},
		),
		danglingReferences: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "dangling_references_total",
				Help:      "Campaign products seen referencing a product missing from the catalog",
			},
		),
		catalogRefreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "refreshes_total",
				Help:      "Catalog snapshot refresh attempts by result",
			},
			[]string{"result"},
		),
	}

	r.registry.MustRegister(
		r.evaluations,
		r.evaluationDuration,
		r.generatedOffers,
		r.danglingReferences,
		r.catalogRefreshes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveStorefront records one composed storefront.
func (r *Recorder) ObserveStorefront(mode string, profiled bool, offers int, elapsed time.Duration) {
	r.evaluations.WithLabelValues(mode, strconv.FormatBool(profiled)).Inc()
	r.evaluationDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	if profiled {
		r.generatedOffers.WithLabelValues(mode).Observe(float64(offers))
	}
}

// AddDanglingReferences counts campaign products pointing at unknown
// products.
func (r *Recorder) AddDanglingReferences(n int) {
	r.danglingReferences.Add(float64(n))
}

// ObserveCatalogRefresh counts a refresh attempt.
func (r *Recorder) ObserveCatalogRefresh(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	r.catalogRefreshes.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
