package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// WireEncoded implements pattern.Observer.
func (r *Registry) WireEncoded(name string, degenerate bool) {
	r.WiresEncodedTotal.Inc()
	if degenerate {
		r.DegenerateWiresTotal.Inc()
	}

	r.mu.Lock()
	r.patterns[name] = struct{}{}
	n := len(r.patterns)
	r.mu.Unlock()
	r.PatternsDistinct.Set(float64(n))
}

// NetProcessed implements sequence.Observer.
func (r *Registry) NetProcessed() { r.NetsProcessedTotal.Inc() }

// SequenceEmitted implements sequence.Observer.
func (r *Registry) SequenceEmitted() { r.SequencesEmittedTotal.Inc() }

// TargetUnreachable implements sequence.Observer.
func (r *Registry) TargetUnreachable() { r.SequenceTargetsUnreachableTotal.Inc() }

// DuplicateEdgeDropped implements timing.ParseObserver.
func (r *Registry) DuplicateEdgeDropped() { r.TimingDuplicateEdgesDroppedTotal.Inc() }

// EdgeAnnotated implements timing.AnnotateObserver.
func (r *Registry) EdgeAnnotated(matched bool) {
	if matched {
		r.TimingEdgesAnnotatedTotal.Inc()
		return
	}
	r.TimingEdgesUnmatchedTotal.Inc()
}

// InputFileSkipped records a net file that could not be read.
func (r *Registry) InputFileSkipped() { r.InputFilesSkippedTotal.Inc() }

// WriteTextfile writes every metric to path in the text exposition
// format, for a node-exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, r.registry), "metrics: write %s", path)
}
