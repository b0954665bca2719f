// Package route holds the routed-wire data model of one design (points,
// path segments, wires, pins, nets) and a streaming reader for the
// per-net JSON files emitted by the physical-design backend.
//
// Every value is built fresh from input files and is owned by the caller
// that decoded it; nothing here is shared or cached across calls.
package route

import (
	"errors"
	"fmt"
)

// Sentinel errors for net decoding.
var (
	// ErrBadDocument indicates the top-level JSON value is neither an
	// array of nets nor a single net object.
	ErrBadDocument = errors.New("route: expected a JSON array or object of nets")
)

// Point is a routing-grid location on a metal layer. Points compare by value.
type Point struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Layer int `json:"z"`
}

// String renders the point as (x,y,layer).
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Layer)
}

// Less orders points by x, then y. Layer does not participate, so two
// points stacked on different layers are neither less nor greater.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// Node is a Point with the backend's node id and, for wire endpoints, the
// id of the pin it lands on (nil when it lands on no pin).
type Node struct {
	ID    int
	Point Point
	PinID *int
}

// PathSegment is one elementary straight or via hop between two nodes.
type PathSegment struct {
	Node1 Node
	Node2 Node
}

// Wire is one connected trace. Ends holds the wire's two endpoint nodes;
// Paths is its bend-point decomposition. Paths are assumed chained
// (Paths[i].Node2 == Paths[i+1].Node1) and this is not validated.
type Wire struct {
	ID    int
	Ends  PathSegment
	Paths []PathSegment
}

// Pin is one cell pin attached to a net.
type Pin struct {
	ID       int
	Instance string
	Name     string
	Driver   bool
}

// Net is the full set of wires and pins realizing one electrical connection.
type Net struct {
	ID    int
	Name  string
	Pins  []Pin
	Wires []Wire
}

// DriverPinIDs returns the ids of the net's driver pins in pin order.
func (n *Net) DriverPinIDs() []int {
	var ids []int
	for _, p := range n.Pins {
		if p.Driver {
			ids = append(ids, p.ID)
		}
	}

	return ids
}
