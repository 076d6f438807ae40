// Package search implements translation candidate discovery and
// scoring: component G (bounded BFS across the translation graph to
// find candidate target-language nodes), component H (all-simple-paths
// confidence scoring), and the selection policy that turns scored
// candidates into a final shortlist (spec.md §4.G-H).
package search

import (
	"math"
	"sort"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/direrr"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/transgraph"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

// DefaultCutoff is the hop/path-length bound of 4, the same value the
// run profile defaults to; the pipeline itself takes its cutoff from
// the run profile, not from this constant.
const DefaultCutoff = 4

// Candidates performs a bounded breadth-first search from source,
// stopping at the first node whose language is target and expanding
// no further from it (spec §4.G): a translation is a sink, not a
// stepping stone. The search also stops once 10 candidates have been
// found or the cutoff has been exhausted, whichever comes first.
func Candidates(g *transgraph.Graph, source word.Word, target string, cutoff int) ([]word.Word, error) {
	srcID, ok := g.NodeID(source)
	if !ok {
		return nil, direrr.ErrNodeNotFound
	}

	seen := map[int64]bool{srcID: true}
	frontier := []int64{srcID}
	var result []word.Word

	for level := 0; len(frontier) > 0 && level <= cutoff && len(result) < 10; level++ {
		var next []int64
		for _, id := range frontier {
			w, _ := g.WordByID(id)
			if id != srcID && w.Lang == target {
				result = append(result, w)
				continue
			}
			for _, nb := range g.AdjacentIDs(id) {
				if !seen[nb] {
					seen[nb] = true
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}
	return result, nil
}

// Score is component H: the confidence metric for one candidate
// translation, Σ exp(-|p|) over every simple path from source to
// candidate no longer than cutoff hops.
func Score(g *transgraph.Graph, source, candidate word.Word, cutoff int) float64 {
	srcID, ok1 := g.NodeID(source)
	dstID, ok2 := g.NodeID(candidate)
	if !ok1 || !ok2 {
		return 0
	}

	var coef float64
	visited := map[int64]bool{srcID: true}
	var walk func(id int64, depth int)
	walk = func(id int64, depth int) {
		for _, nb := range g.AdjacentIDs(id) {
			pathLen := depth + 1
			if pathLen > cutoff {
				continue
			}
			if nb == dstID {
				coef += math.Exp(-float64(pathLen))
				continue
			}
			if visited[nb] {
				continue
			}
			visited[nb] = true
			walk(nb, pathLen)
			visited[nb] = false
		}
	}
	walk(srcID, 0)
	return coef
}

// Scored is a translation candidate paired with its confidence.
type Scored struct {
	Word  word.Word
	Score float64
}

// Evaluate scores every candidate from source and returns them ordered
// by descending confidence (spec §4.H `evaluate`).
func Evaluate(g *transgraph.Graph, source word.Word, candidates []word.Word, cutoff int) []Scored {
	out := make([]Scored, len(candidates))
	for i, c := range candidates {
		out[i] = Scored{Word: c, Score: Score(g, source, c, cutoff)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Select applies the selection policy to an already-ranked Scored
// slice: topn > 0 returns that many highest-scoring candidates (all of
// them when fewer are ranked); topn == 0 runs the "auto" policy, which pads a
// short (<10) result with a minimal per-slot score before averaging,
// then keeps only candidates scoring above that average (spec §4.H).
func Select(ranked []Scored, cutoff, topn int) []Scored {
	if topn > 0 {
		if topn > len(ranked) {
			topn = len(ranked)
		}
		return ranked[:topn]
	}

	top := ranked
	if len(top) > 10 {
		top = top[:10]
	}

	var mean float64
	for _, s := range top {
		mean += s.Score
	}
	if len(top) < 10 {
		mean += math.Exp(-float64(cutoff+1)) * float64(10-len(top))
	}
	mean /= 10

	var out []Scored
	for _, s := range top {
		if s.Score > mean {
			out = append(out, s)
		}
	}
	return out
}
