package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "calendar"

// Result labels for Operation.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics groups every collector the service exports.
type Metrics struct {
	gatherer prometheus.Gatherer

	operations       *prometheus.CounterVec
	eventsScheduled  *prometheus.CounterVec
	conflicts        *prometheus.CounterVec
	calendars        prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpRequestTimes *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the collectors on reg and serves them from g.
func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		gatherer: g,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Calendar operations by name and result.",
		}, []string{"operation", "result"}),
		eventsScheduled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_scheduled_total",
			Help:      "Events inserted into a calendar, by how they were created.",
		}, []string{"source"}),
		conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduling_conflicts_total",
			Help:      "Insertions rejected because they overlapped an existing event.",
		}, []string{"operation"}),
		calendars: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "calendars",
			Help:      "Number of calendars currently held.",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpRequestTimes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) Operation(name string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.operations.WithLabelValues(name, result).Inc()
}

func (m *Metrics) EventsScheduled(source string, n int) {
	if n > 0 {
		m.eventsScheduled.WithLabelValues(source).Add(float64(n))
	}
}

func (m *Metrics) Conflict(operation string) {
	m.conflicts.WithLabelValues(operation).Inc()
}

func (m *Metrics) SetCalendars(n int) {
	m.calendars.Set(float64(n))
}

func (m *Metrics) HTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestTimes.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
