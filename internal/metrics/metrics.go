// Package metrics collects prometheus metrics for a validation run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tokenreg"

// Recorder holds the metrics of one validation run on its own registry, so runs never share
// state through the global registerer.
type Recorder struct {
	registry *prometheus.Registry

	tokens         *prometheus.CounterVec
	findings       *prometheus.CounterVec
	lookupDuration *prometheus.HistogramVec
	lookupFailures *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_validated_total",
			Help:      "Token records validated, by result.",
		}, []string{"result"}),
		findings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "findings_total",
			Help:      "Validation findings, by kind.",
		}, []string{"kind"}),
		lookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Duration of remote lookups, by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		lookupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_failures_total",
			Help:      "Remote lookups that returned an error, by operation.",
		}, []string{"operation"}),
	}

	r.registry.MustRegister(r.tokens, r.findings, r.lookupDuration, r.lookupFailures)

	return r
}

// RecordToken counts a validated token record.
func (r *Recorder) RecordToken(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	r.tokens.WithLabelValues(result).Inc()
}

// RecordFinding counts a finding of the given kind.
func (r *Recorder) RecordFinding(kind string) {
	r.findings.WithLabelValues(kind).Inc()
}

// ObserveLookup records the duration and outcome of a remote lookup.
func (r *Recorder) ObserveLookup(operation string, d time.Duration, err error) {
	r.lookupDuration.WithLabelValues(operation).Observe(d.Seconds())
	if err != nil {
		r.lookupFailures.WithLabelValues(operation).Inc()
	}
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics in the text exposition format to path, for pickup by the
// node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
