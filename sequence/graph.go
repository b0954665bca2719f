package sequence

import (
	"strconv"

	"github.com/katalvlaran/wirepat/core"
	"github.com/katalvlaran/wirepat/pattern"
	"github.com/katalvlaran/wirepat/route"
)

// BuildGraph registers every wire of net with enc and returns the net's
// graph. Vertex ids are the decimal endpoint node ids. A second wire
// between the same endpoints does not add an edge; it relabels the
// existing one with its own pattern. A wire whose ends share one node id
// becomes a self-loop.
func BuildGraph(net *route.Net, enc *pattern.Encoder) (*core.Graph, error) {
	if net == nil {
		return nil, ErrNilNet
	}
	if enc == nil {
		return nil, ErrNilEncoder
	}

	g := core.NewGraph(core.WithLoops())
	for _, w := range net.Wires {
		name := enc.AddWire(w).Name
		from, err := addEndpoint(g, w.Ends.Node1)
		if err != nil {
			return nil, err
		}
		to, err := addEndpoint(g, w.Ends.Node2)
		if err != nil {
			return nil, err
		}

		if e, err := g.EdgeBetween(from, to); err == nil {
			if err = g.SetEdgeAttr(e.ID, AttrPattern, name); err != nil {
				return nil, err
			}
			continue
		}
		if _, err = g.AddEdge(from, to, core.WithEdgeAttr(AttrPattern, name)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func addEndpoint(g *core.Graph, n route.Node) (string, error) {
	id := strconv.Itoa(n.ID)
	if err := g.AddVertex(id); err != nil {
		return "", err
	}
	v, err := g.Vertex(id)
	if err != nil {
		return "", err
	}
	if _, ok := v.Metadata[AttrPos]; !ok {
		v.Metadata[AttrPos] = n.Point
	}
	if _, ok := v.Metadata[AttrPin]; !ok && n.PinID != nil {
		v.Metadata[AttrPin] = *n.PinID
	}

	return id, nil
}

// Leaves returns the degree-1 vertices of g in insertion order.
func Leaves(g *core.Graph) []string {
	var out []string
	for _, id := range g.Vertices() {
		if _, _, deg, err := g.Degree(id); err == nil && deg == 1 {
			out = append(out, id)
		}
	}

	return out
}

// FirstLeaf picks the first degree-1 vertex in insertion order.
func FirstLeaf(g *core.Graph, _ *route.Net) (string, bool) {
	leaves := Leaves(g)
	if len(leaves) == 0 {
		return "", false
	}

	return leaves[0], true
}

// DriverLeaf picks the first leaf whose endpoint lands on one of the
// net's driver pins, and falls back to FirstLeaf when none does.
func DriverLeaf(g *core.Graph, net *route.Net) (string, bool) {
	leaves := Leaves(g)
	if net != nil {
		drivers := make(map[int]struct{})
		for _, id := range net.DriverPinIDs() {
			drivers[id] = struct{}{}
		}
		for _, id := range leaves {
			v, err := g.Vertex(id)
			if err != nil {
				continue
			}
			if pin, ok := v.Metadata[AttrPin].(int); ok {
				if _, isDriver := drivers[pin]; isDriver {
					return id, true
				}
			}
		}
	}
	if len(leaves) == 0 {
		return "", false
	}

	return leaves[0], true
}

// PolicyByName maps a configuration name to a SourcePolicy.
func PolicyByName(name string) (SourcePolicy, error) {
	switch name {
	case "", "first_leaf":
		return FirstLeaf, nil
	case "driver_pin":
		return DriverLeaf, nil
	default:
		return nil, ErrUnknownPolicy
	}
}
