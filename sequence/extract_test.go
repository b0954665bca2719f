package sequence_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wirepat/core"
	"github.com/katalvlaran/wirepat/pattern"
	"github.com/katalvlaran/wirepat/route"
	"github.com/katalvlaran/wirepat/sequence"
)

func node(id, x, y, l int) route.Node {
	return route.Node{ID: id, Point: route.Point{X: x, Y: y, Layer: l}}
}

func pinNode(id, x, y, l, pin int) route.Node {
	n := node(id, x, y, l)
	n.PinID = &pin
	return n
}

// straight is a one-segment wire between a and b.
func straight(id int, a, b route.Node) route.Wire {
	seg := route.PathSegment{Node1: a, Node2: b}
	return route.Wire{ID: id, Ends: seg, Paths: []route.PathSegment{seg}}
}

// fanout is a T-shaped net: 1 -(up 5)- 2, 2 -(right 5)- 3, 2 -(left 10)- 4.
func fanout() *route.Net {
	n1, n2 := node(1, 0, 0, 1), node(2, 0, 5, 1)
	n3, n4 := pinNode(3, 5, 5, 1, 30), pinNode(4, -10, 5, 1, 40)
	return &route.Net{
		ID:   9,
		Name: "fan",
		Pins: []route.Pin{{ID: 30}, {ID: 40, Driver: true}},
		Wires: []route.Wire{
			straight(0, n1, n2),
			straight(1, n2, n3),
			straight(2, n2, n4),
		},
	}
}

type counter struct{ nets, emitted, unreachable int }

func (c *counter) NetProcessed()      { c.nets++ }
func (c *counter) SequenceEmitted()   { c.emitted++ }
func (c *counter) TargetUnreachable() { c.unreachable++ }

type ExtractSuite struct {
	suite.Suite
	enc *pattern.Encoder
	obs *counter
	x   *sequence.Extractor
}

func (s *ExtractSuite) SetupTest() {
	var err error
	s.enc, err = pattern.NewEncoder()
	s.Require().NoError(err)
	s.obs = &counter{}
	s.x, err = sequence.NewExtractor(s.enc, sequence.WithObserver(s.obs))
	s.Require().NoError(err)
}

func (s *ExtractSuite) TestTwoPinNet() {
	a := pinNode(100, 0, 0, 1, 3)
	b := pinNode(103, 10, 10, 2, 4)
	w := route.Wire{
		ID:   0,
		Ends: route.PathSegment{Node1: a, Node2: b},
		Paths: []route.PathSegment{
			{Node1: a, Node2: node(101, 0, 10, 1)},
			{Node1: node(101, 0, 10, 1), Node2: node(102, 0, 10, 2)},
			{Node1: node(102, 0, 10, 2), Node2: b},
		},
	}

	seqs, err := s.x.Extract(&route.Net{ID: 1, Wires: []route.Wire{w}})
	s.Require().NoError(err)
	s.Require().Len(seqs, 1)
	s.Equal([]route.Point{a.Point, b.Point}, seqs[0].Points)
	s.Equal([]string{"T11V2R11"}, seqs[0].Patterns)
	s.Equal(1, s.enc.Catalog().Total())
	s.Equal(counter{nets: 1, emitted: 1}, *s.obs)
}

func (s *ExtractSuite) TestFanoutUsesFirstLeaf() {
	seqs, err := s.x.Extract(fanout())
	s.Require().NoError(err)
	s.Require().Len(seqs, 2)

	s.Equal([]route.Point{{X: 0, Y: 0, Layer: 1}, {X: 0, Y: 5, Layer: 1}, {X: 5, Y: 5, Layer: 1}}, seqs[0].Points)
	s.Equal([]string{"T2", "R2"}, seqs[0].Patterns)
	s.Equal([]route.Point{{X: 0, Y: 0, Layer: 1}, {X: 0, Y: 5, Layer: 1}, {X: -10, Y: 5, Layer: 1}}, seqs[1].Points)
	s.Equal([]string{"T2", "R2"}, seqs[1].Patterns)
	s.Equal(3, s.enc.Catalog().Total())
}

func (s *ExtractSuite) TestDriverLeafPolicy() {
	x, err := sequence.NewExtractor(s.enc, sequence.WithSourcePolicy(sequence.DriverLeaf))
	s.Require().NoError(err)

	seqs, err := x.Extract(fanout())
	s.Require().NoError(err)
	s.Require().Len(seqs, 2)
	for _, seq := range seqs {
		s.Equal(route.Point{X: -10, Y: 5, Layer: 1}, seq.Points[0])
	}
	s.Equal(route.Point{X: 0, Y: 0, Layer: 1}, seqs[0].Points[2])
	s.Equal(route.Point{X: 5, Y: 5, Layer: 1}, seqs[1].Points[2])

	// Without a driver on any leaf DriverLeaf behaves like FirstLeaf.
	net := fanout()
	net.Pins[1].Driver = false
	seqs, err = x.Extract(net)
	s.Require().NoError(err)
	s.Equal(route.Point{X: 0, Y: 0, Layer: 1}, seqs[0].Points[0])
}

func (s *ExtractSuite) TestUnreachableLeavesSkipped() {
	net := &route.Net{ID: 2, Wires: []route.Wire{
		straight(0, node(1, 0, 0, 1), node(2, 3, 0, 1)),
		straight(1, node(3, 9, 9, 1), node(4, 9, 12, 1)),
	}}

	seqs, err := s.x.Extract(net)
	s.Require().NoError(err)
	s.Require().Len(seqs, 1)
	s.Equal([]string{"R2"}, seqs[0].Patterns)
	s.Equal(counter{nets: 1, emitted: 1, unreachable: 2}, *s.obs)
}

func (s *ExtractSuite) TestParallelWiresRelabelOneEdge() {
	a, b := node(1, 0, 0, 1), node(2, 4, 4, 1)
	first := straight(0, a, b)
	first.Paths = []route.PathSegment{
		{Node1: a, Node2: node(7, 0, 4, 1)},
		{Node1: node(7, 0, 4, 1), Node2: b},
	}
	second := straight(1, a, b)
	second.Paths = []route.PathSegment{
		{Node1: a, Node2: node(8, 4, 0, 1)},
		{Node1: node(8, 4, 0, 1), Node2: b},
	}

	g, err := sequence.BuildGraph(&route.Net{Wires: []route.Wire{first, second}}, s.enc)
	s.Require().NoError(err)
	s.Equal(1, g.EdgeCount())
	e, err := g.EdgeBetween("1", "2")
	s.Require().NoError(err)
	s.Equal("R2T2", e.Metadata[sequence.AttrPattern])
	s.Equal(1, s.enc.Catalog().Count("T2R2"))
	s.Equal(1, s.enc.Catalog().Count("R2T2"))
}

func (s *ExtractSuite) TestSingleLeafAndSelfLoop() {
	loop := route.Wire{ID: 0, Ends: route.PathSegment{Node1: node(5, 0, 0, 1), Node2: node(5, 0, 0, 1)}}
	net := &route.Net{Wires: []route.Wire{loop, straight(1, node(5, 0, 0, 1), node(6, 0, 2, 1))}}

	g, err := sequence.BuildGraph(net, s.enc)
	s.Require().NoError(err)
	_, _, deg, err := g.Degree("5")
	s.Require().NoError(err)
	s.Equal(3, deg)
	s.Equal([]string{"6"}, sequence.Leaves(g))

	seqs, err := s.x.Extract(net)
	s.Require().NoError(err)
	s.Empty(seqs)

	seqs, err = s.x.Extract(&route.Net{})
	s.Require().NoError(err)
	s.Empty(seqs)
}

func (s *ExtractSuite) TestExtractAllAndErrors() {
	two := &route.Net{Wires: []route.Wire{straight(0, node(1, 0, 0, 1), node(2, 0, 1, 1))}}
	seqs, err := s.x.ExtractAll([]*route.Net{two, fanout()})
	s.Require().NoError(err)
	s.Len(seqs, 3)

	_, err = s.x.Extract(nil)
	s.ErrorIs(err, sequence.ErrNilNet)
	_, err = sequence.NewExtractor(nil)
	s.ErrorIs(err, sequence.ErrNilEncoder)
	_, err = sequence.BuildGraph(two, nil)
	s.ErrorIs(err, sequence.ErrNilEncoder)
}

func TestExtractSuite(t *testing.T) {
	suite.Run(t, new(ExtractSuite))
}

func TestPolicyByName(t *testing.T) {
	for _, name := range []string{"", "first_leaf", "driver_pin"} {
		p, err := sequence.PolicyByName(name)
		require.NoError(t, err)
		require.NotNil(t, p)
	}
	_, err := sequence.PolicyByName("random")
	require.ErrorIs(t, err, sequence.ErrUnknownPolicy)

	id, ok := sequence.FirstLeaf(core.NewGraph(), nil)
	require.False(t, ok)
	require.Empty(t, id)
}

func TestWriterRoundTrip(t *testing.T) {
	seqs := []sequence.NetSequence{
		{Points: []route.Point{{X: 0, Y: 0, Layer: 1}, {X: 10, Y: 10, Layer: 2}}, Patterns: []string{"T11V2R11"}},
		{Points: []route.Point{{X: 1, Y: 1, Layer: 1}, {X: 1, Y: 2, Layer: 1}}, Patterns: []string{""}},
	}

	var buf bytes.Buffer
	w := sequence.NewWriter(&buf)
	require.NoError(t, w.Write(seqs[0]))
	require.NoError(t, w.Write(seqs[1]))
	require.Equal(t, 2, w.Count())
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	require.Error(t, w.Write(seqs[0]))
	require.Contains(t, buf.String(), `"loc_seq":[{"x":0,"y":0,"z":1}`)

	back, err := sequence.ReadJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, seqs, back)

	buf.Reset()
	w = sequence.NewWriter(&buf)
	require.NoError(t, w.Close())
	require.Equal(t, "[]\n", buf.String())
	back, err = sequence.ReadJSON(&buf)
	require.NoError(t, err)
	require.Empty(t, back)
}
