package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

const namespace = "delivery_slots"

// PrometheusAdapter держит собственный реестр, чтобы несколько экземпляров не конфликтовали
type PrometheusAdapter struct {
	registry *prometheus.Registry

	ratesQuoted        prometheus.Histogram
	slotsServed        *prometheus.CounterVec
	slotsEmpty         *prometheus.CounterVec
	selectionsVerdicts *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

var _ out.MetricsPort = (*PrometheusAdapter)(nil)

func NewPrometheusAdapter() *PrometheusAdapter {
	a := &PrometheusAdapter{
		registry: prometheus.NewRegistry(),
		ratesQuoted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rates_quoted",
			Help:      "Number of rates returned per quote request.",
			Buckets:   []float64{0, 1, 2, 3, 5, 10},
		}),
		slotsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_requests_total",
			Help:      "Slot list requests by kind and cache usage.",
		}, []string{"kind", "cached"}),
		slotsEmpty: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_empty_total",
			Help:      "Slot list requests that produced no options.",
		}, []string{"kind"}),
		selectionsVerdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_validated_total",
			Help:      "Validated selections by verdict.",
		}, []string{"verdict"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	a.registry.MustRegister(
		a.ratesQuoted,
		a.slotsServed,
		a.slotsEmpty,
		a.selectionsVerdicts,
		a.httpRequests,
		a.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return a
}

func (a *PrometheusAdapter) RatesQuoted(count int) {
	a.ratesQuoted.Observe(float64(count))
}

func (a *PrometheusAdapter) SlotsServed(kind string, count int, cached bool) {
	a.slotsServed.WithLabelValues(kind, strconv.FormatBool(cached)).Inc()
	if count == 0 {
		a.slotsEmpty.WithLabelValues(kind).Inc()
	}
}

func (a *PrometheusAdapter) SelectionValidated(verdict domain.Verdict) {
	label := "accepted"
	if !verdict.OK {
		label = string(verdict.Reason)
	}
	a.selectionsVerdicts.WithLabelValues(label).Inc()
}

func (a *PrometheusAdapter) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	statusLabel := strconv.Itoa(status)
	a.httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	a.httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func (a *PrometheusAdapter) Handler() http.Handler {
	return promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})
}
