// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeBetween/GetEdge/
//       SetEdgeAttr/Edges/EdgeCount. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import "strconv"

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge between from and to, creating missing
// endpoints first (from before to, so vertex order follows edge order).
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate eid, build the Edge, apply opts.
//  5. Store it and append it to the incidence lists of both endpoints
//     (once for a self-loop).
//
// Complexity: O(deg(from)) for the multi-edge check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.findEdge(from, to) != nil {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{
		ID:       eid,
		From:     from,
		To:       to,
		Directed: g.directed,
		Metadata: make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, eid)
	g.incidence[from] = append(g.incidence[from], eid)
	if from != to {
		g.incidence[to] = append(g.incidence[to], eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge connects from to to. In an
// undirected graph the check is symmetric.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.findEdge(from, to) != nil
}

// EdgeBetween returns the first-created edge connecting from to to.
// Returns ErrEdgeNotFound if there is none.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if e := g.findEdge(from, to); e != nil {
		return e, nil
	}

	return nil, ErrEdgeNotFound
}

// GetEdge returns the edge with the given ID.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// SetEdgeAttr stores key=value in the Metadata of edge edgeID, replacing
// any previous value.
func (g *Graph) SetEdgeAttr(edgeID, key string, value interface{}) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Metadata[key] = value

	return nil
}

// Edges returns all edges in creation order.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// findEdge scans the incidence list of from. Caller holds muEdgeAdj.
func (g *Graph) findEdge(from, to string) *Edge {
	for _, eid := range g.incidence[from] {
		e := g.edges[eid]
		if e.From == from && e.To == to {
			return e
		}
		if !e.Directed && e.From == to && e.To == from {
			return e
		}
	}

	return nil
}

// nextEdgeID returns "e1", "e2", ... Caller holds muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
