// Package langgraph implements the language-selection recommender of
// spec.md §4.E: a weighted meta-graph of languages, where an edge's
// weight reflects how well two languages' bilingual dictionary is
// populated, searched with Yen's K-shortest simple paths to suggest a
// shortlist of intermediate languages worth including when building a
// translation graph for a given pair.
package langgraph

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
)

// maxWeight bounds which edges enter the graph: a coefficient at or
// above 1 means the pair's dictionary is too small to be useful as a
// stepping stone, matching the original tool's `coef < 1` filter.
const maxWeight = 1.0

// DefaultK is the number of shortest simple paths explored between
// the two query languages, as in the original recommender.
const DefaultK = 300

// Graph is a weighted undirected meta-graph over language codes.
type Graph struct {
	g       *simple.WeightedUndirectedGraph
	idOf    map[string]int64
	langOf  map[int64]string
	nextID  int64
}

// Build constructs a Graph from dictionary-size statistics (spec §6
// stats.csv rows), computing each edge's weight as
// 1 / log10(10 + both + 0.5*LR + 0.5*RL) and dropping edges whose
// weight would make the pair a poor stepping stone.
func Build(rows []dixfile.StatsRow) *Graph {
	lg := &Graph{
		g:      simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		idOf:   make(map[string]int64),
		langOf: make(map[int64]string),
	}
	for _, r := range rows {
		weight := 1 / math.Log10(10+float64(r.Both)+0.5*float64(r.LR)+0.5*float64(r.RL))
		if weight >= maxWeight {
			continue
		}
		n1 := lg.nodeFor(r.Lang1)
		n2 := lg.nodeFor(r.Lang2)
		lg.g.SetWeightedEdge(simple.WeightedEdge{F: n1, T: n2, W: weight})
	}
	return lg
}

func (lg *Graph) nodeFor(lang string) graph.Node {
	if id, ok := lg.idOf[lang]; ok {
		return simple.Node(id)
	}
	id := lg.nextID
	lg.nextID++
	lg.idOf[lang] = id
	lg.langOf[id] = lang
	lg.g.AddNode(simple.Node(id))
	return simple.Node(id)
}

// Recommendation is one language worth adding to the working graph
// for a (source, target) pair: the shortest path length at which it
// first appears and the path itself.
type Recommendation struct {
	Lang   string
	Length float64
	Path   []string
}

// Recommend returns languages useful for translating between source
// and target, ranked by the length of the shortest of the k best
// simple paths between source and target in which each language first
// appears (spec §4.E). Languages absent from the graph yield an empty
// result rather than an error, matching the tool's best-effort intent.
func Recommend(lg *Graph, source, target string, k int) []Recommendation {
	if k <= 0 {
		k = DefaultK
	}
	srcID, ok1 := lg.idOf[source]
	dstID, ok2 := lg.idOf[target]
	if !ok1 || !ok2 {
		return nil
	}

	paths := path.YenKShortestPaths(lg.g, k, simple.Node(srcID), simple.Node(dstID))

	best := make(map[string]Recommendation)
	for _, p := range paths {
		length := pathLength(lg.g, p)
		names := make([]string, len(p))
		for i, n := range p {
			names[i] = lg.langOf[n.ID()]
		}
		for _, name := range names {
			if _, seen := best[name]; !seen {
				best[name] = Recommendation{Lang: name, Length: length, Path: names}
			}
		}
	}

	out := make([]Recommendation, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Length != out[j].Length {
			return out[i].Length < out[j].Length
		}
		return out[i].Lang < out[j].Lang
	})
	return out
}

func pathLength(g *simple.WeightedUndirectedGraph, nodes []graph.Node) float64 {
	var total float64
	for i := 1; i < len(nodes); i++ {
		edge := g.WeightedEdge(nodes[i-1].ID(), nodes[i].ID())
		if edge != nil {
			total += edge.Weight()
		}
	}
	return total
}
