// Package pattern turns a routed wire into a canonical symbolic pattern
// and keeps a frequency catalog of the patterns it has seen.
//
// A pattern name is a run of <direction letter><length bucket> pairs, e.g.
// "T11V2R11" for up 10, via, right 10. Two wires whose geometry differs
// only by a uniform scale of their segment lengths, or only by the
// direction the wire is traced in, map to the same name:
//
//   - orientation: the point list is reversed when its first point is
//     greater than its last by (x, then y);
//   - scale: every unit length is divided by the GCD of the wire's lengths;
//   - bucketing: a normalized length n renders as n/epsilon + 1.
//
// Limits of the canonical form:
//
//   - A wire whose two ends share (x,y) is never reversed, so such a wire
//     and its reverse may differ.
//   - A via always has length 1, so a wire with vias only reduces by the
//     GCD of its planar lengths and 1, i.e. not at all.
//   - Broken chaining (Paths[i].Node2 != Paths[i+1].Node1) is not detected
//     and yields a well-formed but geometrically wrong pattern.
package pattern

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrOptionViolation is returned by NewEncoder for an invalid Option.
	ErrOptionViolation = errors.New("pattern: invalid option supplied")

	// ErrBadCSV indicates a catalog CSV that lacks the Pattern,Count header
	// or holds a non-integer count.
	ErrBadCSV = errors.New("pattern: malformed catalog CSV")
)

// Direction is the closed set of moves a pattern unit can make.
type Direction uint8

const (
	Left Direction = iota
	Right
	Top
	Bottom
	Via
)

// directionCodes maps every Direction to its one-letter code. The map is
// injective; Code panics on a Direction outside the set.
var directionCodes = map[Direction]byte{
	Left:   'L',
	Right:  'R',
	Top:    'T',
	Bottom: 'B',
	Via:    'V',
}

var directionNames = map[Direction]string{
	Left:   "LEFT",
	Right:  "RIGHT",
	Top:    "TOP",
	Bottom: "BOTTOM",
	Via:    "VIA",
}

// Code returns the direction's one-letter code.
func (d Direction) Code() byte {
	c, ok := directionCodes[d]
	if !ok {
		panic(fmt.Sprintf("pattern: unknown direction %d", d))
	}

	return c
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}

	return fmt.Sprintf("Direction(%d)", d)
}

// Unit is one straight run or via of a wire.
type Unit struct {
	Direction Direction
	Length    int
}

// Pattern is a canonical name together with the GCD-normalized units that
// produced it. The empty name is the pattern of a degenerate wire.
type Pattern struct {
	Name  string
	Units []Unit
}

// Degenerate reports whether the pattern has no units.
func (p Pattern) Degenerate() bool { return len(p.Units) == 0 }

// Observer receives one call per wire registered through AddWire.
// metrics.Registry satisfies it.
type Observer interface {
	WireEncoded(name string, degenerate bool)
}

// Option configures an Encoder.
type Option func(*options)

type options struct {
	epsilon  int
	catalog  *Catalog
	observer Observer
	err      error
}

// WithEpsilon sets the length bucket width (default 1). Values below 1
// are rejected with ErrOptionViolation.
func WithEpsilon(eps int) Option {
	return func(o *options) {
		if eps < 1 {
			o.err = fmt.Errorf("%w: epsilon must be >= 1 (%d)", ErrOptionViolation, eps)
			return
		}
		o.epsilon = eps
	}
}

// WithCatalog makes the Encoder count into c instead of a fresh Catalog.
// Several encoders may share one catalog only from a single goroutine.
func WithCatalog(c *Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithObserver registers an observer for AddWire calls.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}
