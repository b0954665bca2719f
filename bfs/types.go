package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the walk source is not a vertex.
	ErrSourceNotFound = errors.New("bfs: source vertex not found")

	// ErrOptionViolation is returned when an Option is out of range.
	ErrOptionViolation = errors.New("bfs: invalid option")

	// ErrNoPath is returned when the destination was never discovered.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tunes a walk.
type Option func(*config)

type config struct {
	ctx     context.Context
	maxHops int

	err error // first invalid option, surfaced by Walk
}

func newConfig(opts []Option) (config, error) {
	c := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&c)
	}

	return c, c.err
}

// WithContext stops the walk with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMaxHops leaves vertices farther than n edges from the source
// undiscovered. Zero means unlimited; negative values are rejected.
func WithMaxHops(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.err = fmt.Errorf("%w: max hops %d", ErrOptionViolation, n)
			return
		}
		c.maxHops = n
	}
}

// Tree is the breadth-first tree grown from Source. Parent links point
// one hop closer to Source; the first discovery of a vertex fixes them.
type Tree struct {
	Source string

	// Order lists vertices in discovery order, Source first.
	Order []string

	// Hops maps every discovered vertex to its edge distance from Source.
	Hops map[string]int

	parent map[string]string
}

// Reached reports whether id was discovered.
func (t *Tree) Reached(id string) bool {
	_, ok := t.Hops[id]
	return ok
}

// Parent returns the predecessor of id. Source and undiscovered vertices
// have none.
func (t *Tree) Parent(id string) (string, bool) {
	p, ok := t.parent[id]
	return p, ok
}

// PathTo returns the vertex path from Source to dst, both inclusive.
func (t *Tree) PathTo(dst string) ([]string, error) {
	hops, ok := t.Hops[dst]
	if !ok {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, t.Source, dst)
	}
	path := make([]string, hops+1)
	for i, cur := hops, dst; i >= 0; i-- {
		path[i] = cur
		cur = t.parent[cur]
	}

	return path, nil
}
