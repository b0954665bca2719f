package timing

import (
	"strconv"
	"strings"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/wirepat/pattern"
	"github.com/katalvlaran/wirepat/route"
)

// WireIndex maps endpoint id pairs, in both orders, to the wire joining
// them. When two wires share a pair the later one wins.
type WireIndex struct {
	wires map[[2]int]route.Wire
}

// NewWireIndex returns an empty index.
func NewWireIndex() *WireIndex {
	return &WireIndex{wires: make(map[[2]int]route.Wire)}
}

// AddNet indexes every wire of n.
func (x *WireIndex) AddNet(n *route.Net) {
	for _, w := range n.Wires {
		a, b := w.Ends.Node1.ID, w.Ends.Node2.ID
		x.wires[[2]int{a, b}] = w
		x.wires[[2]int{b, a}] = w
	}
}

// Lookup returns the wire between endpoint ids a and b.
func (x *WireIndex) Lookup(a, b int) (route.Wire, bool) {
	w, ok := x.wires[[2]int{a, b}]
	return w, ok
}

// Len returns the number of indexed keys, two per distinct pair.
func (x *WireIndex) Len() int { return len(x.wires) }

// NodeID returns the integer after the last ':' of a node name.
func NodeID(name string) (int, bool) {
	i := strings.LastIndexByte(name, ':')
	if i < 0 {
		return 0, false
	}
	id, err := strconv.Atoi(name[i+1:])

	return id, err == nil
}

// Annotator labels wire graph edges with wire patterns.
type Annotator struct {
	enc      *pattern.Encoder
	observer AnnotateObserver
}

// NewAnnotator returns an Annotator registering patterns with enc. obs
// may be nil.
func NewAnnotator(enc *pattern.Encoder, obs AnnotateObserver) (*Annotator, error) {
	if enc == nil {
		return nil, ErrNilEncoder
	}

	return &Annotator{enc: enc, observer: obs}, nil
}

// Annotate returns a copy of g whose edges carry the pattern of the wire
// joining their endpoints, or "" for edges that are not wires (cell arcs).
// Every matched edge registers its wire with the encoder again, so a wire
// is counted once per edge that refers to it. All other edge and node
// fields are copied unchanged.
func (a *Annotator) Annotate(g *WireGraph, idx *WireIndex) (*WireGraph, error) {
	out := g.Clone()
	matched := 0
	for i := range out.Edges {
		e := &out.Edges[i]
		from, to, err := out.Endpoints(*e)
		if err != nil {
			return nil, err
		}

		e.Pattern = ""
		w, ok := a.wireFor(from.Name, to.Name, idx)
		if ok {
			e.Pattern = a.enc.AddWire(w).Name
			matched++
		}
		if a.observer != nil {
			a.observer.EdgeAnnotated(ok)
		}
	}
	klog.Infof("annotated %d of %d wire graph edges", matched, len(out.Edges))

	return out, nil
}

// AnnotateNets indexes nets and annotates g.
func (a *Annotator) AnnotateNets(g *WireGraph, nets []*route.Net) (*WireGraph, error) {
	idx := NewWireIndex()
	for _, n := range nets {
		idx.AddNet(n)
	}

	return a.Annotate(g, idx)
}

func (a *Annotator) wireFor(from, to string, idx *WireIndex) (route.Wire, bool) {
	fid, ok := NodeID(from)
	if !ok {
		klog.V(2).Infof("timing: node %q has no numeric id", from)
		return route.Wire{}, false
	}
	tid, ok := NodeID(to)
	if !ok {
		klog.V(2).Infof("timing: node %q has no numeric id", to)
		return route.Wire{}, false
	}

	return idx.Lookup(fid, tid)
}
