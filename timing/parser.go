package timing

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/wirepat/fileio"
)

const maxLineBytes = 16 << 20

// Parser reads wire graph dumps. The zero value is ready to use.
type Parser struct {
	Observer ParseObserver
}

// Parse reads a dump from r with a zero Parser.
func Parse(r io.Reader) (*WireGraph, error) {
	var p Parser
	return p.Parse(r)
}

// ParseFile reads the dump at path (plain, .gz or .zst). A missing file
// is not an error: found is false and g is nil.
func (p *Parser) ParseFile(path string) (g *WireGraph, found bool, err error) {
	f, err := fileio.Open(path)
	if fileio.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	klog.Infof("load wire graph %s", path)
	g, err = p.Parse(f)
	if err != nil {
		return nil, true, errors.Wrapf(err, "timing: %s", path)
	}
	klog.Infof("wire graph nodes num: %d", len(g.Nodes))
	klog.Infof("wire graph edges num: %d", len(g.Edges))

	return g, true, nil
}

// parseState is the pending block of the state machine.
type parseState struct {
	g    *WireGraph
	node *Node
	edge *Edge
	seen map[[2]int]struct{}
}

func (st *parseState) flushNode() {
	if st.node != nil {
		st.g.Nodes = append(st.g.Nodes, *st.node)
		st.node = nil
	}
}

// flushEdge appends the pending edge unless its pair was flushed before.
func (st *parseState) flushEdge() bool {
	if st.edge == nil {
		return true
	}
	e := st.edge
	st.edge = nil
	key := [2]int{e.From, e.To}
	if _, dup := st.seen[key]; dup {
		return false
	}
	st.seen[key] = struct{}{}
	st.g.Edges = append(st.g.Edges, *e)

	return true
}

// Parse runs the block state machine over r. Lines are trimmed; a line
// without a colon, blank ones included, is malformed. A "node_" line
// flushes the pending node; an "edge_" line flushes the pending node and
// then the pending edge. At end of input the pending edge is appended
// without the duplicate check and a pending node is discarded. Unknown
// keys are ignored.
func (p *Parser) Parse(r io.Reader) (*WireGraph, error) {
	st := &parseState{g: &WireGraph{}, seen: make(map[[2]int]struct{})}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "node_"):
			st.flushNode()
		case strings.HasPrefix(line, "edge_"):
			st.flushNode()
			if !st.flushEdge() {
				klog.V(3).Infof("timing: line %d: duplicate edge dropped", lineNo)
				if p.Observer != nil {
					p.Observer.DuplicateEdgeDropped()
				}
			}
		default:
			if err := st.attr(line); err != nil {
				return nil, errors.Wrapf(err, "line %d: %q", lineNo, line)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "timing: read")
	}

	if st.edge != nil {
		st.g.Edges = append(st.g.Edges, *st.edge)
	}

	return st.g, nil
}

func (st *parseState) attr(line string) error {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return ErrMalformedLine
	}
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)

	switch key {
	case "name":
		st.node = &Node{Name: value}
	case "is_pin", "is_port":
		if st.node == nil {
			return ErrNoPendingNode
		}
		v, err := atoi(value)
		if err != nil {
			return err
		}
		if key == "is_pin" {
			st.node.IsPin = v == 1
		} else {
			st.node.IsPort = v == 1
		}
	case "from_node":
		v, err := atoi(value)
		if err != nil {
			return err
		}
		st.edge = &Edge{From: v, To: NoNode}
	case "to_node", "is_net_edge":
		if st.edge == nil {
			return ErrNoPendingEdge
		}
		v, err := atoi(value)
		if err != nil {
			return err
		}
		if key == "to_node" {
			st.edge.To = v
		} else {
			st.edge.IsNetEdge = v == 1
		}
	}

	return nil
}

func atoi(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrMalformedLine
	}

	return v, nil
}
