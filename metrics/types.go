// Package metrics holds the Prometheus counters of one wirepat run. A
// Registry is owned by the command that creates it; the library packages
// only see it through their small observer interfaces.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for a run.
type Registry struct {
	// Pattern metrics
	WiresEncodedTotal    prometheus.Counter
	DegenerateWiresTotal prometheus.Counter
	PatternsDistinct     prometheus.Gauge

	// Sequence metrics
	NetsProcessedTotal              prometheus.Counter
	SequencesEmittedTotal           prometheus.Counter
	SequenceTargetsUnreachableTotal prometheus.Counter

	// Timing metrics
	TimingEdgesAnnotatedTotal        prometheus.Counter
	TimingEdgesUnmatchedTotal        prometheus.Counter
	TimingDuplicateEdgesDroppedTotal prometheus.Counter

	// Input metrics
	InputFilesSkippedTotal prometheus.Counter

	registry *prometheus.Registry

	mu       sync.Mutex
	patterns map[string]struct{}
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		patterns: make(map[string]struct{}),
	}

	r.initPatternMetrics()
	r.initSequenceMetrics()
	r.initTimingMetrics()
	r.initInputMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
