package sequence

import (
	"errors"
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/wirepat/bfs"
	"github.com/katalvlaran/wirepat/core"
	"github.com/katalvlaran/wirepat/pattern"
	"github.com/katalvlaran/wirepat/route"
)

// Extractor builds net graphs and extracts their sequences. It shares the
// encoder's catalog, so every wire it sees is counted there.
type Extractor struct {
	enc      *pattern.Encoder
	policy   SourcePolicy
	observer Observer
}

// NewExtractor returns an Extractor using enc.
func NewExtractor(enc *pattern.Encoder, opts ...Option) (*Extractor, error) {
	if enc == nil {
		return nil, ErrNilEncoder
	}
	x := &Extractor{enc: enc, policy: FirstLeaf}
	for _, opt := range opts {
		opt(x)
	}

	return x, nil
}

// Extract returns one NetSequence per leaf other than the source, in leaf
// insertion order. A graph with fewer than two leaves yields none. A leaf
// the source cannot reach is skipped.
func (x *Extractor) Extract(net *route.Net) ([]NetSequence, error) {
	g, err := BuildGraph(net, x.enc)
	if err != nil {
		return nil, err
	}
	if x.observer != nil {
		x.observer.NetProcessed()
	}

	src, ok := x.policy(g, net)
	if !ok {
		klog.V(2).Infof("net %d (%s): no leaf, no sequences", net.ID, net.Name)
		return nil, nil
	}

	tree, err := bfs.Walk(g, src)
	if err != nil {
		return nil, fmt.Errorf("sequence: net %d: %w", net.ID, err)
	}

	var seqs []NetSequence
	for _, target := range Leaves(g) {
		if target == src {
			continue
		}
		path, err := tree.PathTo(target)
		if errors.Is(err, bfs.ErrNoPath) {
			klog.Warningf("net %d (%s): leaf %s unreachable from %s", net.ID, net.Name, target, src)
			if x.observer != nil {
				x.observer.TargetUnreachable()
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("sequence: net %d: %w", net.ID, err)
		}

		seq, err := walk(g, path)
		if err != nil {
			return nil, fmt.Errorf("sequence: net %d: %w", net.ID, err)
		}
		seqs = append(seqs, seq)
		if x.observer != nil {
			x.observer.SequenceEmitted()
		}
	}
	klog.V(2).Infof("net %d (%s): %d vertices, %d sequences", net.ID, net.Name, g.VertexCount(), len(seqs))

	return seqs, nil
}

// ExtractAll concatenates Extract over nets.
func (x *Extractor) ExtractAll(nets []*route.Net) ([]NetSequence, error) {
	var out []NetSequence
	for _, n := range nets {
		seqs, err := x.Extract(n)
		if err != nil {
			return out, err
		}
		out = append(out, seqs...)
	}

	return out, nil
}

// walk converts a vertex path into points and edge labels.
func walk(g *core.Graph, path []string) (NetSequence, error) {
	seq := NetSequence{
		Points:   make([]route.Point, 0, len(path)),
		Patterns: make([]string, 0, len(path)),
	}
	for i, id := range path {
		v, err := g.Vertex(id)
		if err != nil {
			return seq, err
		}
		p, _ := v.Metadata[AttrPos].(route.Point)
		seq.Points = append(seq.Points, p)
		if i == 0 {
			continue
		}
		e, err := g.EdgeBetween(path[i-1], id)
		if err != nil {
			return seq, err
		}
		name, _ := e.Metadata[AttrPattern].(string)
		seq.Patterns = append(seq.Patterns, name)
	}

	return seq, nil
}
