// File: methods_adjacent.go
// Role: Neighborhood queries: Neighbors, NeighborIDs.
//
// Determinism:
//   - Both follow edge creation order.
//
// Policy:
//   - Undirected edges are visible from both endpoints.
//   - Directed edges are visible only from their From endpoint.

package core

// Neighbors returns the edges leaving id, in creation order.
// Self-loops appear once, parallel edges appear once per edge.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.incidence[id]))
	for _, eid := range g.incidence[id] {
		e := g.edges[eid]
		if e.Directed && e.From != id {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable from id over one
// edge, in the order their first connecting edge was created.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		nbr := e.Other(id)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		ids = append(ids, nbr)
	}

	return ids, nil
}
