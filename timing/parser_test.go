package timing_test

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wirepat/timing"
)

const nodeBlocks = `node_0:
  name: u1:10
  is_pin: 1
  is_port: 0
node_1:
  name: u2:11
  is_pin: 0
  is_port: 1
node_2:
  name: n1:12
  is_pin: 0
  is_port: 0
`

func edgeBlock(i, from, to int) string {
	return fmt.Sprintf("edge_%d:\n  from_node: %d\n  to_node: %d\n  is_net_edge: 1\n", i, from, to)
}

type dropCounter struct{ n int }

func (d *dropCounter) DuplicateEdgeDropped() { d.n++ }

func TestParse_NodesAndEdges(t *testing.T) {
	g, err := timing.Parse(strings.NewReader(nodeBlocks + edgeBlock(0, 0, 1) + edgeBlock(1, 1, 2)))
	require.NoError(t, err)
	require.Equal(t, []timing.Node{
		{Name: "u1:10", IsPin: true},
		{Name: "u2:11", IsPort: true},
		{Name: "n1:12"},
	}, g.Nodes)
	require.Equal(t, []timing.Edge{
		{From: 0, To: 1, IsNetEdge: true},
		{From: 1, To: 2, IsNetEdge: true},
	}, g.Edges)
}

func TestParse_DuplicateDroppedMidStream(t *testing.T) {
	var obs dropCounter
	p := timing.Parser{Observer: &obs}
	in := nodeBlocks + edgeBlock(0, 0, 1) + edgeBlock(1, 1, 2) + edgeBlock(2, 0, 1) + edgeBlock(3, 2, 0)

	g, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, g.Edges, 3)
	require.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, pairs(g))
	require.Equal(t, 1, obs.n)
}

func TestParse_DuplicateKeptAtEndOfFile(t *testing.T) {
	var obs dropCounter
	p := timing.Parser{Observer: &obs}
	in := nodeBlocks + edgeBlock(0, 0, 1) + edgeBlock(1, 1, 2) + edgeBlock(2, 0, 1)

	g, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 1}, {1, 2}, {0, 1}}, pairs(g))
	require.Zero(t, obs.n)
}

func TestParse_PendingNodeAtEndOfFileDropped(t *testing.T) {
	g, err := timing.Parse(strings.NewReader(nodeBlocks))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)
	require.Empty(t, g.Edges)

	g, err = timing.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, g.Nodes)
	require.Empty(t, g.Edges)
}

func TestParse_Lenient(t *testing.T) {
	in := "node_0:\n   name:  a:b:7  \n  comment: ignored: here\nedge_0:\n  from_node: 0\n"
	g, err := timing.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []timing.Node{{Name: "a:b:7"}}, g.Nodes)
	require.Equal(t, []timing.Edge{{From: 0, To: timing.NoNode}}, g.Edges)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"no colon at all", "garbage\n", timing.ErrMalformedLine},
		{"blank line", "node_0:\n\n  name: u1:1\n", timing.ErrMalformedLine},
		{"whitespace line", "edge_0:\n  from_node: 0\n   \n", timing.ErrMalformedLine},
		{"flag not numeric", "node_0:\n  name: u1:1\n  is_pin: yes\n", timing.ErrMalformedLine},
		{"from not numeric", "edge_0:\n  from_node: x\n", timing.ErrMalformedLine},
		{"flag before name", "node_0:\n  is_pin: 1\n", timing.ErrNoPendingNode},
		{"to before from", "edge_0:\n  to_node: 1\n", timing.ErrNoPendingEdge},
		{"net flag before from", "edge_0:\n  is_net_edge: 1\n", timing.ErrNoPendingEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := timing.Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			require.Contains(t, err.Error(), "line ")
		})
	}
}

func TestParseFile(t *testing.T) {
	var p timing.Parser
	g, found, err := p.ParseFile(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, g)

	path := filepath.Join(t.TempDir(), "design.yml.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(nodeBlocks + edgeBlock(0, 0, 1)))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	g, found, err = p.ParseFile(path)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, g.Nodes, 3)
	require.Len(t, g.Edges, 1)

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("oops\n"), 0o644))
	_, found, err = p.ParseFile(bad)
	require.True(t, found)
	require.ErrorIs(t, err, timing.ErrMalformedLine)
}

func pairs(g *timing.WireGraph) [][2]int {
	out := make([][2]int, 0, len(g.Edges))
	for _, e := range g.Edges {
		out = append(out, [2]int{e.From, e.To})
	}

	return out
}
