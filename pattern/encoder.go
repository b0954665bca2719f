package pattern

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/wirepat/route"
)

// Encoder computes canonical wire patterns and registers them in a Catalog.
// It is not safe for concurrent use.
type Encoder struct {
	epsilon  int
	catalog  *Catalog
	defs     map[string]Pattern
	observer Observer
}

// NewEncoder builds an Encoder. Without WithCatalog it owns a fresh Catalog.
func NewEncoder(opts ...Option) (*Encoder, error) {
	o := options{epsilon: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.catalog == nil {
		o.catalog = NewCatalog()
	}

	return &Encoder{
		epsilon:  o.epsilon,
		catalog:  o.catalog,
		defs:     make(map[string]Pattern),
		observer: o.observer,
	}, nil
}

// Epsilon returns the bucket width.
func (e *Encoder) Epsilon() int { return e.epsilon }

// Catalog returns the catalog AddWire counts into.
func (e *Encoder) Catalog() *Catalog { return e.catalog }

// AddWire computes w's pattern, increments its count in the catalog and
// returns it. When the name was seen before, the first stored definition
// is returned.
func (e *Encoder) AddWire(w route.Wire) Pattern {
	p := e.Encode(w)
	if def, ok := e.defs[p.Name]; ok {
		p = def
	} else {
		e.defs[p.Name] = p
	}
	e.catalog.Add(p.Name)
	if e.observer != nil {
		e.observer.WireEncoded(p.Name, p.Degenerate())
	}

	return p
}

// Lookup returns the stored definition of a registered pattern name.
func (e *Encoder) Lookup(name string) (Pattern, bool) {
	p, ok := e.defs[name]
	return p, ok
}

// Encode computes w's pattern without registering it.
func (e *Encoder) Encode(w route.Wire) Pattern {
	return e.EncodePoints(Points(w))
}

// Points returns the ordered bend points of w: Node1 of every path
// segment followed by Node2 of the last one. A wire without paths has no
// points.
func Points(w route.Wire) []route.Point {
	if len(w.Paths) == 0 {
		return nil
	}
	pts := make([]route.Point, 0, len(w.Paths)+1)
	for _, p := range w.Paths {
		pts = append(pts, p.Node1.Point)
	}

	return append(pts, w.Paths[len(w.Paths)-1].Node2.Point)
}

// EncodePoints computes the pattern of an ordered point list.
func (e *Encoder) EncodePoints(pts []route.Point) Pattern {
	if len(pts) > 1 && pts[len(pts)-1].Less(pts[0]) {
		rev := make([]route.Point, len(pts))
		for i, p := range pts {
			rev[len(pts)-1-i] = p
		}
		pts = rev
	}

	var units []Unit
	for i := 0; i+1 < len(pts); i++ {
		if u, ok := classify(pts[i], pts[i+1]); ok {
			units = append(units, u)
		}
	}
	if len(units) == 0 {
		return Pattern{}
	}

	g := units[0].Length
	for _, u := range units[1:] {
		g = gcd(g, u.Length)
	}

	var sb strings.Builder
	for i := range units {
		units[i].Length /= g
		sb.WriteByte(units[i].Direction.Code())
		sb.WriteString(strconv.Itoa(units[i].Length/e.epsilon + 1))
	}

	return Pattern{Name: sb.String(), Units: units}
}

// classify maps one hop to a unit. Identical points are degenerate.
// A hop that changes both x and y is classified by its x change; chained
// router output never contains one.
func classify(a, b route.Point) (Unit, bool) {
	switch {
	case a == b:
		return Unit{}, false
	case a.X == b.X && a.Y == b.Y:
		return Unit{Direction: Via, Length: 1}, true
	case a.X == b.X:
		if b.Y > a.Y {
			return Unit{Direction: Top, Length: b.Y - a.Y}, true
		}
		return Unit{Direction: Bottom, Length: a.Y - b.Y}, true
	default:
		if b.X > a.X {
			return Unit{Direction: Right, Length: b.X - a.X}, true
		}
		return Unit{Direction: Left, Length: a.X - b.X}, true
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
