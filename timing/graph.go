package timing

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/wirepat/core"
)

// Vertex and edge metadata keys of Graph.
const (
	AttrIsPin     = "is_pin"
	AttrIsPort    = "is_port"
	AttrR         = "feature_R"
	AttrC         = "feature_C"
	AttrFromSlew  = "feature_from_slew"
	AttrToSlew    = "feature_to_slew"
	AttrIsNetEdge = "is_net_edge"
	AttrPattern   = "pattern"
)

// Graph converts g into a directed core.Graph keyed by node name. Parallel
// edges and loops are kept, one core edge per WireGraph edge. A repeated
// node name keeps one vertex whose flags come from its last occurrence.
func (g *WireGraph) Graph() (*core.Graph, error) {
	cg := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for _, n := range g.Nodes {
		if err := cg.AddVertex(n.Name); err != nil {
			return nil, errors.Wrapf(err, "timing: node %q", n.Name)
		}
		v, err := cg.Vertex(n.Name)
		if err != nil {
			return nil, err
		}
		v.Metadata[AttrIsPin] = n.IsPin
		v.Metadata[AttrIsPort] = n.IsPort
	}

	for i, e := range g.Edges {
		from, to, err := g.Endpoints(e)
		if err != nil {
			return nil, errors.Wrapf(err, "timing: edge #%d", i)
		}
		_, err = cg.AddEdge(from.Name, to.Name,
			core.WithEdgeAttr(AttrR, e.R),
			core.WithEdgeAttr(AttrC, e.C),
			core.WithEdgeAttr(AttrFromSlew, e.FromSlew),
			core.WithEdgeAttr(AttrToSlew, e.ToSlew),
			core.WithEdgeAttr(AttrIsNetEdge, e.IsNetEdge),
			core.WithEdgeAttr(AttrPattern, e.Pattern),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "timing: edge #%d", i)
		}
	}

	return cg, nil
}

// WriteJSON writes g as {"nodes":[...],"edges":[...]}.
func (g *WireGraph) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	return errors.Wrap(enc.Encode(g), "timing: encode graph")
}

// ReadJSON decodes a graph written by WriteJSON.
func ReadJSON(r io.Reader) (*WireGraph, error) {
	var g WireGraph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, errors.Wrap(err, "timing: decode graph")
	}

	return &g, nil
}
