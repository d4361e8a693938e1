// Package metrics holds the Prometheus collectors for the catalog and feed
// engine. Each Metrics owns its registry so tests and headless runs don't
// share global state.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "tubeview"

type Metrics struct {
	Registry *prometheus.Registry

	PagesLoaded       *prometheus.CounterVec   // by entity kind
	PageErrors        *prometheus.CounterVec   // by entity kind
	AdvanceIgnored    *prometheus.CounterVec   // by controller state
	EntitiesGenerated *prometheus.CounterVec   // by entity kind
	PageLatency       *prometheus.HistogramVec // by entity kind
	SearchQueries     prometheus.Counter
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		PagesLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "feed", Name: "pages_loaded_total",
			Help: "Pages appended to feed controllers.",
		}, []string{"kind"}),
		PageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "feed", Name: "page_errors_total",
			Help: "Page loads that failed at the source.",
		}, []string{"kind"}),
		AdvanceIgnored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "feed", Name: "advance_ignored_total",
			Help: "Advance calls dropped by the re-entrancy guard or exhaustion.",
		}, []string{"state"}),
		EntitiesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "catalog", Name: "entities_generated_total",
			Help: "Entities delivered to feeds.",
		}, []string{"kind"}),
		PageLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "feed", Name: "page_latency_seconds",
			Help:    "Time from Advance to the page arriving, simulated delay included.",
			Buckets: []float64{.001, .01, .05, .1, .25, .5, .75, 1, 2},
		}, []string{"kind"}),
		SearchQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "search", Name: "queries_total",
			Help: "Queries run against the search index.",
		}),
	}
	m.Registry.MustRegister(
		m.PagesLoaded, m.PageErrors, m.AdvanceIgnored,
		m.EntitiesGenerated, m.PageLatency, m.SearchQueries,
	)
	return m
}

// ObservePage records one delivered page. A nil Metrics is a no-op.
func (m *Metrics) ObservePage(kind string, entities int, took time.Duration) {
	if m == nil {
		return
	}
	m.PagesLoaded.WithLabelValues(kind).Inc()
	m.EntitiesGenerated.WithLabelValues(kind).Add(float64(entities))
	m.PageLatency.WithLabelValues(kind).Observe(took.Seconds())
}

func (m *Metrics) ObservePageError(kind string) {
	if m == nil {
		return
	}
	m.PageErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveIgnored(state string) {
	if m == nil {
		return
	}
	m.AdvanceIgnored.WithLabelValues(state).Inc()
}

func (m *Metrics) ObserveSearch() {
	if m == nil {
		return
	}
	m.SearchQueries.Inc()
}

// WriteText dumps the registry in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
