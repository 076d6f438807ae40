// Package transgraph implements the translation graph of spec.md
// §4.F: a directed graph whose nodes are canonical Words and whose
// edges are the bilingual pairs resolved by dixfile.BuildEdges, ready
// for candidate search (component G) and scoring (component H).
package transgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

// Graph is a directed graph over Words, keyed by Word.Key() so that
// two occurrences naming the same canonical Word always resolve to
// the same node.
type Graph struct {
	g      *simple.DirectedGraph
	idOf   map[string]int64
	wordOf map[int64]word.Word
	nextID int64
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		g:      simple.NewDirectedGraph(),
		idOf:   make(map[string]int64),
		wordOf: make(map[int64]word.Word),
	}
}

// Build constructs a Graph from a set of edges (spec §6 edge-list
// file): a BOTH edge adds arcs in both directions, LR/RL add one.
func Build(edges []dixfile.Edge) *Graph {
	g := New()
	for _, e := range edges {
		g.AddEdge(e.Side, e.Word1, e.Word2)
	}
	return g
}

func (g *Graph) nodeFor(w word.Word) graph.Node {
	key := w.Key()
	if id, ok := g.idOf[key]; ok {
		return simple.Node(id)
	}
	id := g.nextID
	g.nextID++
	g.idOf[key] = id
	g.wordOf[id] = w
	g.g.AddNode(simple.Node(id))
	return simple.Node(id)
}

// AddEdge inserts one bilingual pair, honoring its Side: BOTH adds
// arcs in both directions, LR only source->target, RL only
// target->source.
func (g *Graph) AddEdge(side dixfile.Side, w1, w2 word.Word) {
	n1 := g.nodeFor(w1)
	n2 := g.nodeFor(w2)
	switch side {
	case dixfile.SideLR:
		g.g.SetEdge(g.g.NewEdge(n1, n2))
	case dixfile.SideRL:
		g.g.SetEdge(g.g.NewEdge(n2, n1))
	default:
		g.g.SetEdge(g.g.NewEdge(n1, n2))
		g.g.SetEdge(g.g.NewEdge(n2, n1))
	}
}

// RemoveEdge deletes both the w1->w2 and w2->w1 arcs, if present. Used
// by the evaluator to hide a held-out pair before searching for it.
func (g *Graph) RemoveEdge(w1, w2 word.Word) {
	id1, ok1 := g.idOf[w1.Key()]
	id2, ok2 := g.idOf[w2.Key()]
	if !ok1 || !ok2 {
		return
	}
	g.g.RemoveEdge(id1, id2)
	g.g.RemoveEdge(id2, id1)
}

// Has reports whether w is a node in the graph.
func (g *Graph) Has(w word.Word) bool {
	_, ok := g.idOf[w.Key()]
	return ok
}

// Neighbors returns every Word directly reachable from w.
func (g *Graph) Neighbors(w word.Word) []word.Word {
	id, ok := g.idOf[w.Key()]
	if !ok {
		return nil
	}
	it := g.g.From(id)
	var out []word.Word
	for it.Next() {
		out = append(out, g.wordOf[it.Node().ID()])
	}
	return out
}

// NodeID returns the internal node ID for w and whether it exists.
func (g *Graph) NodeID(w word.Word) (int64, bool) {
	id, ok := g.idOf[w.Key()]
	return id, ok
}

// WordByID returns the Word stored at a node ID.
func (g *Graph) WordByID(id int64) (word.Word, bool) {
	w, ok := g.wordOf[id]
	return w, ok
}

// Underlying exposes the gonum graph for direct access. The bounded
// BFS and all-simple-paths scoring in package search use AdjacentIDs
// instead.
func (g *Graph) Underlying() *simple.DirectedGraph {
	return g.g
}

// AdjacentIDs returns the IDs of every node reachable from id in one
// hop, used by the bounded-BFS candidate search.
func (g *Graph) AdjacentIDs(id int64) []int64 {
	it := g.g.From(id)
	var out []int64
	for it.Next() {
		out = append(out, it.Node().ID())
	}
	return out
}
