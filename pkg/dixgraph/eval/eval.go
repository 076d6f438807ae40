// Package eval implements the held-out evaluator of spec.md §4.I: it
// samples mutually unambiguous translation pairs, temporarily hides
// each from the graph, asks the search pipeline to recover it, and
// aggregates precision/recall/F1 over the sample.
package eval

import (
	"math/rand/v2"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/direrr"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/search"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/transgraph"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

// maxSample bounds how many mutually unambiguous pairs one evaluation
// run draws, matching the original tool's cap.
const maxSample = 1000

// Metrics holds the aggregate outcome of one evaluation run.
type Metrics struct {
	N         int
	Precision float64
	Recall    float64
	F1        float64
}

// pair is one sampled mutually-unambiguous translation pair, one node
// per language.
type pair struct {
	a, b word.Word
}

// sampleMutuallyUnambiguous walks candidates (pre-shuffled by the
// caller with a seeded PRNG) and keeps (node, its one same-target-
// language neighbor) pairs where that relationship holds in both
// directions -- the original tool's "one-variant" filter -- up to
// maxSample pairs.
func sampleMutuallyUnambiguous(g *transgraph.Graph, candidates []word.Word, lang1, lang2 string) []pair {
	var pairs []pair
	for _, w := range candidates {
		if len(pairs) >= maxSample {
			break
		}
		if !g.Has(w) {
			continue
		}
		neighbors := g.Neighbors(w)
		if len(neighbors) <= 1 {
			continue
		}
		side2 := filterLang(neighbors, lang2)
		if len(side2) != 1 {
			continue
		}
		back := g.Neighbors(side2[0])
		if len(back) <= 1 {
			continue
		}
		side1 := filterLang(back, lang1)
		if len(side1) != 1 || !side1[0].Equal(w) {
			continue
		}
		pairs = append(pairs, pair{a: w, b: side2[0]})
	}
	return pairs
}

func filterLang(words []word.Word, lang string) []word.Word {
	var out []word.Word
	for _, w := range words {
		if w.Lang == lang {
			out = append(out, w)
		}
	}
	return out
}

// twoNodeScore hides the (a,b) edge, searches for b from a and a from
// b, and scores the round trip: 0.5 per direction if the held-out node
// ranks within the topn cutoff (or is selected at all, under "auto"),
// 0.01 if it is recovered but ranked beyond topn.
func twoNodeScore(g *transgraph.Graph, p pair, lang1, lang2 string, cutoff, topn int) float64 {
	g.RemoveEdge(p.a, p.b)
	// Restoring via AddEdge (side "" -> both arcs) rather than rebuilding
	// g is only correct because a mutually-unambiguous pair always has
	// both a->b and b->a present to begin with.
	defer g.AddEdge("", p.a, p.b)

	forward := rankOf(g, p.a, lang2, p.b, cutoff, topn)
	backward := rankOf(g, p.b, lang1, p.a, cutoff, topn)

	var coef float64
	coef += directionScore(forward, topn)
	coef += directionScore(backward, topn)
	return coef
}

// rankOf returns the 0-based rank of target within the ranked
// candidates for source, or -1 if target was not recovered at all.
func rankOf(g *transgraph.Graph, source word.Word, targetLang string, target word.Word, cutoff, topn int) int {
	candidates, err := search.Candidates(g, source, targetLang, cutoff)
	if err != nil {
		return -1
	}
	ranked := search.Evaluate(g, source, candidates, cutoff)
	selected := search.Select(ranked, cutoff, topn)
	for i, s := range selected {
		if s.Word.Equal(target) {
			return i
		}
	}
	return -1
}

func directionScore(rank, topn int) float64 {
	if rank < 0 {
		return 0
	}
	limit := topn
	if limit <= 0 {
		limit = 1000
	}
	if rank < limit {
		return 0.5
	}
	return 0.01
}

// Run executes one evaluation iteration (spec §4.I `_one_iter`): it
// samples up to maxSample mutually-unambiguous pairs from l1 (already
// shuffled by the caller using rng), scores each with twoNodeScore,
// and aggregates precision/recall/F1. The graph g is mutated (edges
// temporarily removed and restored) but returned in its original
// state.
func Run(rng *rand.Rand, g *transgraph.Graph, l1 []word.Word, lang1, lang2 string, cutoff, topn int) (Metrics, error) {
	shuffled := make([]word.Word, len(l1))
	copy(shuffled, l1)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	pairs := sampleMutuallyUnambiguous(g, shuffled, lang1, lang2)
	if len(pairs) == 0 {
		return Metrics{}, direrr.ErrEmptySample
	}

	var results []float64
	for _, p := range pairs {
		results = append(results, twoNodeScore(g, p, lang1, lang2, cutoff, topn))
	}

	var perfect, nonzero float64
	for _, r := range results {
		if r > 0 {
			nonzero++
		}
		if r == 1 {
			perfect++
		}
	}

	if nonzero == 0 || len(results) == 0 {
		return Metrics{}, direrr.ErrDegenerateMetrics
	}

	precision := perfect / nonzero
	recall := perfect / float64(len(results))
	if precision+recall == 0 {
		return Metrics{}, direrr.ErrDegenerateMetrics
	}
	f1 := 2 * precision * recall / (precision + recall)

	return Metrics{N: len(pairs), Precision: precision, Recall: recall, F1: f1}, nil
}
