package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the planner's Prometheus instruments on a private
// registry so tests can build as many collectors as they like.
type Collector struct {
	reg *prometheus.Registry

	SearchesTotal     prometheus.Counter
	EmptySearches     prometheus.Counter
	SearchDuration    prometheus.Histogram
	ResultsReturned   prometheus.Histogram
	AdvisoryFallbacks prometheus.Counter

	CatalogRoutes prometheus.Gauge
	CatalogStops  prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planner_searches_total",
			Help: "Total trip searches executed.",
		}),
		EmptySearches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planner_empty_searches_total",
			Help: "Searches that produced no itinerary.",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "planner_search_duration_seconds",
			Help:    "End-to-end duration of one search call.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		ResultsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "planner_results_returned",
			Help:    "Number of itineraries returned per search.",
			Buckets: prometheus.LinearBuckets(0, 1, 6),
		}),
		AdvisoryFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planner_advisory_fallbacks_total",
			Help: "Advisory calls that failed and fell back to the standard strategy.",
		}),
		CatalogRoutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "planner_catalog_routes",
			Help: "Routes in the loaded catalog snapshot.",
		}),
		CatalogStops: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "planner_catalog_stops",
			Help: "Stops in the loaded catalog snapshot.",
		}),
	}

	reg.MustRegister(
		c.SearchesTotal, c.EmptySearches, c.SearchDuration,
		c.ResultsReturned, c.AdvisoryFallbacks,
		c.CatalogRoutes, c.CatalogStops,
	)
	return c
}

// Handler exposes the collector's registry for a /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
