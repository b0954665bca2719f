// Package sequence turns each net into an undirected NetGraph (one vertex
// per wire endpoint, one edge per wire labeled with the wire's pattern)
// and extracts leaf-to-leaf sequences from it: the points visited and the
// pattern labels crossed on the fewest-hop path from a chosen source leaf
// to every other leaf.
//
// Source choice is a SourcePolicy. FirstLeaf, the default, takes the first
// degree-1 vertex in wire order, which is only well defined for two-pin
// nets; on a fanout net every sequence starts at that one arbitrary leaf.
// DriverLeaf starts from the leaf sitting on the net's driver pin instead.
package sequence

import (
	"errors"

	"github.com/katalvlaran/wirepat/core"
	"github.com/katalvlaran/wirepat/route"
)

// Vertex and edge metadata keys of a NetGraph.
const (
	AttrPos     = "pos"     // route.Point of the endpoint, first occurrence wins
	AttrPin     = "pin"     // int pin id, present only on pin endpoints
	AttrPattern = "pattern" // string pattern name of the wire
)

// Sentinel errors.
var (
	// ErrNilEncoder is returned when no pattern encoder is supplied.
	ErrNilEncoder = errors.New("sequence: nil pattern encoder")

	// ErrNilNet is returned by Extract and BuildGraph for a nil net.
	ErrNilNet = errors.New("sequence: nil net")

	// ErrUnknownPolicy is returned by PolicyByName for an unknown name.
	ErrUnknownPolicy = errors.New("sequence: unknown source policy")
)

// NetSequence is one source-to-leaf walk: len(Patterns) == len(Points)-1.
type NetSequence struct {
	Points   []route.Point `json:"loc_seq"`
	Patterns []string      `json:"pattern_seq"`
}

// SourcePolicy picks the source vertex of a net graph. It reports false
// when the graph has no suitable source, in which case the net yields no
// sequences.
type SourcePolicy func(g *core.Graph, net *route.Net) (string, bool)

// Observer receives extraction events. metrics.Registry satisfies it.
type Observer interface {
	NetProcessed()
	SequenceEmitted()
	TargetUnreachable()
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSourcePolicy replaces FirstLeaf. A nil policy is ignored.
func WithSourcePolicy(p SourcePolicy) Option {
	return func(x *Extractor) {
		if p != nil {
			x.policy = p
		}
	}
}

// WithObserver registers an observer.
func WithObserver(obs Observer) Option {
	return func(x *Extractor) { x.observer = obs }
}
