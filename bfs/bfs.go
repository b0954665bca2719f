package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/wirepat/core"
)

// frontier is the mutable state of one walk.
type frontier struct {
	g     *core.Graph
	cfg   config
	queue *linkedlistqueue.Queue
	tree  *Tree
	stop  string // finish once this vertex is discovered; empty means never
}

// Walk grows the full breadth-first tree of g from src.
func Walk(g *core.Graph, src string, opts ...Option) (*Tree, error) {
	f, err := newFrontier(g, src, opts)
	if err != nil {
		return nil, err
	}
	if err = f.run(); err != nil {
		return nil, err
	}

	return f.tree, nil
}

// ShortestPath returns a fewest-hop vertex path from src to dst. The walk
// ends as soon as dst is discovered. An unreachable or absent dst yields a
// wrapped ErrNoPath.
func ShortestPath(g *core.Graph, src, dst string, opts ...Option) ([]string, error) {
	f, err := newFrontier(g, src, opts)
	if err != nil {
		return nil, err
	}
	f.stop = dst
	if err = f.run(); err != nil {
		return nil, err
	}

	return f.tree.PathTo(dst)
}

func newFrontier(g *core.Graph, src string, opts []Option) (*frontier, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, src)
	}

	n := g.VertexCount()
	f := &frontier{
		g:     g,
		cfg:   cfg,
		queue: linkedlistqueue.New(),
		tree: &Tree{
			Source: src,
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			parent: make(map[string]string, n),
		},
	}
	f.discover(src, 0, "")

	return f, nil
}

func (f *frontier) discover(id string, hops int, parent string) {
	f.tree.Order = append(f.tree.Order, id)
	f.tree.Hops[id] = hops
	if parent != "" {
		f.tree.parent[id] = parent
	}
	f.queue.Enqueue(id)
}

// run drains the queue. Neighbors are discovered in core.NeighborIDs
// order, so ties between equal-length paths go to the older edge.
func (f *frontier) run() error {
	for !f.queue.Empty() {
		if err := f.cfg.ctx.Err(); err != nil {
			return err
		}
		if f.stop != "" && f.tree.Reached(f.stop) {
			return nil
		}

		v, _ := f.queue.Dequeue()
		id := v.(string)
		next := f.tree.Hops[id] + 1
		if f.cfg.maxHops > 0 && next > f.cfg.maxHops {
			continue
		}
		nbrs, err := f.g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		for _, nbr := range nbrs {
			if !f.tree.Reached(nbr) {
				f.discover(nbr, next, id)
			}
		}
	}

	return nil
}
