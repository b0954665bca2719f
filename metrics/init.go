package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPatternMetrics() {
	r.WiresEncodedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wirepat_wires_encoded_total",
			Help: "Total number of wires registered with a pattern encoder",
		},
	)

	r.DegenerateWiresTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wirepat_degenerate_wires_total",
			Help: "Wires whose pattern is empty",
		},
	)

	r.PatternsDistinct = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "wirepat_patterns_distinct",
			Help: "Number of distinct pattern names seen",
		},
	)
}

func (r *Registry) initSequenceMetrics() {
	r.NetsProcessedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wirepat_nets_processed_total",
			Help: "Nets turned into net graphs",
		},
	)

	r.SequencesEmittedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wirepat_sequences_emitted_total",
			Help: "Leaf-to-leaf sequences extracted",
		},
	)

	r.SequenceTargetsUnreachableTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wirepat_sequence_targets_unreachable_total",
			Help: "Leaves skipped because the source cannot reach them",
		},
	)
}

func (r *Registry) initTimingMetrics() {
	r.TimingEdgesAnnotatedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wirepat_timing_edges_annotated_total",
			Help: "Timing graph edges labeled with a wire pattern",
		},
	)

	r.TimingEdgesUnmatchedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wirepat_timing_edges_unmatched_total",
			Help: "Timing graph edges with no matching wire",
		},
	)

	r.TimingDuplicateEdgesDroppedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wirepat_timing_duplicate_edges_dropped_total",
			Help: "Duplicate edge blocks dropped while parsing the timing graph",
		},
	)
}

func (r *Registry) initInputMetrics() {
	r.InputFilesSkippedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wirepat_input_files_skipped_total",
			Help: "Net files skipped after a read or decode failure",
		},
	)
}
