// SPDX-License-Identifier: MIT
// Package: trafficpath/export
//
// dot.go - Graphviz export through gonum.org/v1/gonum/graph.
//
// The network is copied into a gonum multigraph so parallel roads and
// self-loops survive; each junction becomes node "n<id>" labelled with its name
// and light timings, each road an edge labelled with its weight.

package export

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/katalvlaran/trafficpath/core"
)

// DOTName is the graph identifier written by WriteDOT.
const DOTName = "City"

// junctionNode adapts core.Vertex to graph.Node.
type junctionNode struct {
	v core.Vertex
}

func (n junctionNode) ID() int64 { return int64(n.v.ID) }

func (n junctionNode) DOTID() string { return "n" + strconv.Itoa(n.v.ID) }

func (n junctionNode) Attributes() []encoding.Attribute {
	c := n.v.Light
	return []encoding.Attribute{{
		Key:   "label",
		Value: strconv.Quote(fmt.Sprintf("%s (R:%d G:%d Y:%d)", n.v.Name, c.Red, c.Green, c.Yellow)),
	}}
}

// roadLine adapts core.Road to graph.WeightedLine.
type roadLine struct {
	from, to graph.Node
	id       int64
	weight   int64
}

func (l roadLine) From() graph.Node         { return l.from }
func (l roadLine) To() graph.Node           { return l.to }
func (l roadLine) ID() int64                { return l.id }
func (l roadLine) Weight() float64          { return float64(l.weight) }
func (l roadLine) ReversedLine() graph.Line { l.from, l.to = l.to, l.from; return l }

func (l roadLine) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.Quote(strconv.FormatInt(l.weight, 10))}}
}

// cityGraph carries the graph-level layout attributes.
type cityGraph struct {
	*multi.WeightedUndirectedGraph
}

func (cityGraph) DOTAttributers() (g, n, e encoding.Attributer) {
	g = &encoding.Attributes{
		{Key: "overlap", Value: "false"},
		{Key: "splines", Value: "true"},
	}

	return g, &encoding.Attributes{}, &encoding.Attributes{}
}

// ToGonum copies g into a gonum weighted undirected multigraph. Node ids are
// the junction ids; line ids are positions in g.Roads().
// Complexity: O(V+E).
func ToGonum(g *core.Graph) *multi.WeightedUndirectedGraph {
	out := multi.NewWeightedUndirectedGraph()
	nodes := make([]junctionNode, g.VertexCount())
	for _, v := range g.Vertices() {
		nodes[v.ID] = junctionNode{v: v}
		out.AddNode(nodes[v.ID])
	}
	for i, r := range g.Roads() {
		out.SetWeightedLine(roadLine{from: nodes[r.From], to: nodes[r.To], id: int64(i), weight: r.Weight})
	}

	return out
}

// WriteDOT writes g as an undirected Graphviz document named DOTName.
func WriteDOT(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	b, err := dot.MarshalMulti(cityGraph{ToGonum(g)}, DOTName, "", "  ")
	if err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	return nil
}
