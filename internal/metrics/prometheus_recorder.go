package metrics

import (
	"net/http"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "docnav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	resolveDuration prom.Histogram
	resolutions     *prom.CounterVec
	fallbacks       *prom.CounterVec
	findings        *prom.GaugeVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.resolveDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "resolve_duration_seconds",
			Help:      "Duration of page navigation resolution",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		})
		pr.resolutions = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Page navigation resolutions by locale and outcome",
		}, []string{"locale", "outcome"})
		pr.fallbacks = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "fallbacks_total",
			Help:      "Locales served the default locale's sidebar or nav",
		}, []string{"kind", "locale"})
		pr.findings = prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "validation_findings",
			Help:      "Validation findings of the loaded site by severity",
		}, []string{"severity"})
		reg.MustRegister(pr.resolveDuration, pr.resolutions, pr.fallbacks, pr.findings)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveResolveDuration(d time.Duration) {
	if p == nil || p.resolveDuration == nil {
		return
	}
	p.resolveDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncResolution(locale string, outcome OutcomeLabel) {
	if p == nil || p.resolutions == nil {
		return
	}
	p.resolutions.WithLabelValues(locale, string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncFallback(kind FallbackKind, locale string) {
	if p == nil || p.fallbacks == nil {
		return
	}
	p.fallbacks.WithLabelValues(string(kind), locale).Inc()
}

func (p *PrometheusRecorder) SetValidationFindings(severity string, n int) {
	if p == nil || p.findings == nil {
		return
	}
	p.findings.WithLabelValues(severity).Set(float64(n))
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prom.Registry {
	reg := prom.NewRegistry()
	reg.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))
	return reg
}

// HTTPHandler returns an http.Handler that serves Prometheus metrics for the provided registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	if reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
