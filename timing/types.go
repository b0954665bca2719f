// Package timing reads the design-wide timing/wire graph text dump and
// annotates its edges with the wire patterns of the nets they belong to.
//
// The dump is a line-oriented block format, not YAML, despite the .yml
// extension it usually carries:
//
//	node_0:
//	  name: u1:12
//	  is_pin: 1
//	  is_port: 0
//	edge_0:
//	  from_node: 0
//	  to_node: 1
//	  is_net_edge: 1
//
// Edge blocks are deduplicated by (from_node, to_node) as they are
// flushed, except the final block of the file, which is always kept.
package timing

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrMalformedLine marks a line without ':' or with a non-integer
	// value for an integer key.
	ErrMalformedLine = errors.New("timing: malformed line")

	// ErrNoPendingNode marks a node attribute before any "name" line.
	ErrNoPendingNode = errors.New("timing: node attribute outside a node block")

	// ErrNoPendingEdge marks an edge attribute before any "from_node" line.
	ErrNoPendingEdge = errors.New("timing: edge attribute outside an edge block")

	// ErrNodeIndex marks an edge whose endpoint index is not a node.
	ErrNodeIndex = errors.New("timing: edge endpoint index out of range")

	// ErrNilEncoder is returned by NewAnnotator without an encoder.
	ErrNilEncoder = errors.New("timing: nil pattern encoder")
)

// Node is one vertex of the wire graph. Name has the form <prefix>:<id>;
// the id is the routing node id used by net wire endpoints.
type Node struct {
	Name   string `json:"name"`
	IsPin  bool   `json:"is_pin"`
	IsPort bool   `json:"is_port"`
}

// NoNode is the To index of an edge block that never set to_node.
const NoNode = -1

// Edge joins Nodes[From] and Nodes[To]. R, C and the slews are set by the
// caller; Pattern is set by an Annotator.
type Edge struct {
	From      int     `json:"from_node"`
	To        int     `json:"to_node"`
	IsNetEdge bool    `json:"is_net_edge"`
	R         float64 `json:"feature_R"`
	C         float64 `json:"feature_C"`
	FromSlew  float64 `json:"feature_from_slew"`
	ToSlew    float64 `json:"feature_to_slew"`
	Pattern   string  `json:"pattern"`
}

// WireGraph is the parsed dump.
type WireGraph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Endpoints returns the nodes of e, or ErrNodeIndex.
func (g *WireGraph) Endpoints(e Edge) (Node, Node, error) {
	if e.From < 0 || e.From >= len(g.Nodes) || e.To < 0 || e.To >= len(g.Nodes) {
		return Node{}, Node{}, fmt.Errorf("%w: %d -> %d of %d nodes", ErrNodeIndex, e.From, e.To, len(g.Nodes))
	}

	return g.Nodes[e.From], g.Nodes[e.To], nil
}

// Clone returns a deep copy of g.
func (g *WireGraph) Clone() *WireGraph {
	return &WireGraph{
		Nodes: append([]Node(nil), g.Nodes...),
		Edges: append([]Edge(nil), g.Edges...),
	}
}

// ParseObserver receives parser events. metrics.Registry satisfies it.
type ParseObserver interface {
	DuplicateEdgeDropped()
}

// AnnotateObserver receives one call per annotated edge.
// metrics.Registry satisfies it.
type AnnotateObserver interface {
	EdgeAnnotated(matched bool)
}
