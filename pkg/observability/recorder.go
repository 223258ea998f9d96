package observability

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/tabitha/pkg/form"
)

// Outcome label values.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Recorder collects validation metrics.
type Recorder struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	fieldErrors *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with its metrics registered on a fresh
// registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabitha_validations_total",
				Help: "Total number of payload validations",
			},
			[]string{"schema", "outcome"},
		),
		fieldErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabitha_validation_field_errors_total",
				Help: "Total number of field errors reported",
			},
			[]string{"schema", "field"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tabitha_validation_duration_seconds",
				Help:    "Duration of payload validations",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"schema"},
		),
	}
	r.registry.MustRegister(r.validations, r.fieldErrors, r.duration)
	return r
}

// ObserveValidation records one validation result.
func (r *Recorder) ObserveValidation(name string, res form.Result, elapsed time.Duration) {
	outcome := OutcomeValid
	if !res.Success {
		outcome = OutcomeInvalid
	}
	r.validations.WithLabelValues(name, outcome).Inc()
	for _, e := range res.Errors {
		r.fieldErrors.WithLabelValues(name, fieldLabel(e.Field)).Inc()
	}
	r.duration.WithLabelValues(name).Observe(elapsed.Seconds())
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current metrics in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}

// fieldLabel replaces slice indexes in a dotted path with "*" so that the
// label set stays bounded.
func fieldLabel(path string) string {
	if path == "" {
		return "(root)"
	}
	segs := strings.Split(path, ".")
	for i, seg := range segs {
		if isIndex(seg) {
			segs[i] = "*"
		}
	}
	return strings.Join(segs, ".")
}

func isIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for _, c := range seg {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
