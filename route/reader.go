package route

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/wirepat/fileio"
)

// jsonSegment mirrors both the "wire" endpoint object and each "paths[]"
// entry of a net file. Pin ids are only present on wire endpoints.
type jsonSegment struct {
	ID1 int  `json:"id1"`
	X1  int  `json:"x1"`
	Y1  int  `json:"y1"`
	L1  int  `json:"l1"`
	P1  *int `json:"p1"`
	ID2 int  `json:"id2"`
	X2  int  `json:"x2"`
	Y2  int  `json:"y2"`
	L2  int  `json:"l2"`
	P2  *int `json:"p2"`
}

func (s jsonSegment) segment() PathSegment {
	return PathSegment{
		Node1: Node{ID: s.ID1, Point: Point{X: s.X1, Y: s.Y1, Layer: s.L1}, PinID: s.P1},
		Node2: Node{ID: s.ID2, Point: Point{X: s.X2, Y: s.Y2, Layer: s.L2}, PinID: s.P2},
	}
}

type jsonWire struct {
	ID    int           `json:"id"`
	Wire  jsonSegment   `json:"wire"`
	Paths []jsonSegment `json:"paths"`
}

type jsonPin struct {
	ID       int      `json:"id"`
	Instance string   `json:"i"`
	Name     string   `json:"p"`
	Driver   flexBool `json:"driver"`
}

type jsonNet struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Pins  []jsonPin  `json:"pins"`
	Wires []jsonWire `json:"wires"`
}

func (jn *jsonNet) net() *Net {
	n := &Net{
		ID:    jn.ID,
		Name:  jn.Name,
		Pins:  make([]Pin, 0, len(jn.Pins)),
		Wires: make([]Wire, 0, len(jn.Wires)),
	}
	for _, p := range jn.Pins {
		n.Pins = append(n.Pins, Pin{ID: p.ID, Instance: p.Instance, Name: p.Name, Driver: bool(p.Driver)})
	}
	for _, w := range jn.Wires {
		wire := Wire{ID: w.ID, Ends: w.Wire.segment(), Paths: make([]PathSegment, 0, len(w.Paths))}
		for _, p := range w.Paths {
			wire.Paths = append(wire.Paths, p.segment())
		}
		n.Wires = append(n.Wires, wire)
	}

	return n
}

// flexBool accepts true/false, 0/1 and their quoted forms; null is false.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	switch s {
	case "null", "":
		*b = false
		return nil
	}
	if v, err := strconv.ParseBool(s); err == nil {
		*b = flexBool(v)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(err, "route: bad boolean %s", data)
	}
	*b = f != 0

	return nil
}

// NetReader decodes nets one at a time from a JSON document holding
// either an array of nets or a single net object, so a caller can process
// a large design net by net without materializing every net.
type NetReader struct {
	br      *bufio.Reader
	dec     *json.Decoder
	started bool
	array   bool
	done    bool
	index   int
}

// NewNetReader wraps r.
func NewNetReader(r io.Reader) *NetReader {
	br := bufio.NewReader(r)
	return &NetReader{br: br, dec: json.NewDecoder(br)}
}

// Next returns the next net, or io.EOF once the document is exhausted.
// An empty document holds no nets.
func (nr *NetReader) Next() (*Net, error) {
	if nr.done {
		return nil, io.EOF
	}
	if !nr.started {
		if err := nr.start(); err != nil {
			nr.done = true
			return nil, err
		}
	}

	if nr.array && !nr.dec.More() {
		nr.done = true
		if _, err := nr.dec.Token(); err != nil {
			return nil, errors.Wrap(err, "route: closing array")
		}
		return nil, io.EOF
	}

	var jn jsonNet
	if err := nr.dec.Decode(&jn); err != nil {
		nr.done = true
		return nil, errors.Wrapf(err, "route: decode net #%d", nr.index)
	}
	nr.index++
	if !nr.array {
		nr.done = true
	}

	return jn.net(), nil
}

// start inspects the first significant byte. For an array document it
// consumes the opening '['; for an object document nothing is consumed.
func (nr *NetReader) start() error {
	nr.started = true

	var first byte
	for {
		b, err := nr.br.Peek(1)
		if err == io.EOF {
			return io.EOF
		}
		if err != nil {
			return errors.Wrap(err, "route: read")
		}
		if c := b[0]; c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			_, _ = nr.br.ReadByte()
			continue
		}
		first = b[0]
		break
	}

	switch first {
	case '[':
		nr.array = true
		_, err := nr.dec.Token()
		return errors.Wrap(err, "route: opening array")
	case '{':
		return nil
	default:
		return ErrBadDocument
	}
}

// ReadNets decodes every net of r.
func ReadNets(r io.Reader) ([]*Net, error) {
	var nets []*Net
	nr := NewNetReader(r)
	for {
		n, err := nr.Next()
		if err == io.EOF {
			return nets, nil
		}
		if err != nil {
			return nets, err
		}
		nets = append(nets, n)
	}
}

// EachNet streams the nets of the file at path (plain, .gz or .zst) into
// fn, stopping at the first decode error or the first error fn returns.
func EachNet(path string, fn func(*Net) error) error {
	f, err := fileio.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	nr := NewNetReader(f)
	for {
		n, err := nr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "route: %s", path)
		}
		if err = fn(n); err != nil {
			return err
		}
	}
}
