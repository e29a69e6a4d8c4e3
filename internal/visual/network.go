package visual

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/dsgirard/tweetlab/internal/analysis"
)

type termNode struct {
	id   int64
	term string
}

func (n termNode) ID() int64     { return n.id }
func (n termNode) DOTID() string { return n.term }

type cooccurEdge struct {
	from, to termNode
	count    int
}

func (e cooccurEdge) From() graph.Node { return e.from }
func (e cooccurEdge) To() graph.Node   { return e.to }
func (e cooccurEdge) ReversedEdge() graph.Edge {
	return cooccurEdge{from: e.to, to: e.from, count: e.count}
}
func (e cooccurEdge) Weight() float64 { return float64(e.count) }
func (e cooccurEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: strconv.Itoa(e.count)}}
}

// Network writes the co-occurrence pairs as a weighted undirected Graphviz
// DOT graph, one node per term, edge weight = number of shared documents.
func Network(name string, pairs []analysis.Pair, w io.Writer) error {
	if len(pairs) == 0 {
		return fmt.Errorf("network: no pairs to draw")
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	nodes := make(map[string]termNode)
	node := func(term string) termNode {
		if n, ok := nodes[term]; ok {
			return n
		}
		n := termNode{id: int64(len(nodes)), term: term}
		nodes[term] = n
		g.AddNode(n)
		return n
	}

	for _, p := range pairs {
		g.SetWeightedEdge(cooccurEdge{from: node(p.A), to: node(p.B), count: p.Count})
	}

	data, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cooccurrence graph: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write cooccurrence graph: %w", err)
	}
	return nil
}
