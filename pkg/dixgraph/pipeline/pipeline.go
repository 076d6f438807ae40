// Package pipeline wires the dixgraph components together into the
// run-level operations the CLI exposes: loading and unifying a
// monolingual lexicon, building a translation graph, proposing new
// entries, tallying coverage, and evaluating quality.
package pipeline

import (
	"context"
	"log"
	"math/rand/v2"
	"sort"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/eval"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/langgraph"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/lexicon"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/search"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/store"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/transgraph"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

// Pipeline bundles the components a run needs plus the store it
// records results to.
type Pipeline struct {
	Store store.Store
}

// New returns a Pipeline backed by st.
func New(st store.Store) *Pipeline {
	return &Pipeline{Store: st}
}

// Unify is the monolingual unification step (component B): it groups
// raw tag observations per lemma and returns the canonical Words ready
// to be indexed or written to a monodix file.
func (p *Pipeline) Unify(obs []lexicon.Observation) []word.Word {
	words := lexicon.Unify(obs)
	log.Printf("unify: %d observations -> %d words", len(obs), len(words))
	return words
}

// Recommend runs the language-selection recommender (component E)
// over pre-loaded dictionary-size statistics.
func (p *Pipeline) Recommend(stats []dixfile.StatsRow, lang1, lang2 string, k int) []langgraph.Recommendation {
	g := langgraph.Build(stats)
	return langgraph.Recommend(g, lang1, lang2, k)
}

// BuildGraph builds the directed translation graph (component F) from
// a set of preprocessed edges.
func (p *Pipeline) BuildGraph(edges []dixfile.Edge) *transgraph.Graph {
	return transgraph.Build(edges)
}

// Propose is the new-entry discovery step (mirrors the original tool's
// get_translations): for every word in l1 that has no neighbor in
// lang2 (and vice versa), it searches for and scores candidates, and
// merges both directions' results into preview rows keyed by the word
// pair. A pair proposed from only one side keeps a zero score on the
// other.
func (p *Pipeline) Propose(g *transgraph.Graph, l1, l2 []word.Word, lang1, lang2 string, cutoff int) []dixfile.PreviewRow {
	type key struct{ k1, k2 string }
	rows := make(map[key]*dixfile.PreviewRow)

	proposeSide := func(side []word.Word, thisLang, otherLang string, setLR bool) {
		for _, w := range side {
			if !g.Has(w) {
				continue
			}
			if hasNeighborIn(g, w, otherLang) {
				continue
			}
			candidates, err := search.Candidates(g, w, otherLang, cutoff)
			if err != nil || len(candidates) == 0 {
				continue
			}
			ranked := search.Evaluate(g, w, candidates, cutoff)
			for _, s := range search.Select(ranked, cutoff, 0) {
				var k key
				if setLR {
					k = key{w.Key(), s.Word.Key()}
				} else {
					k = key{s.Word.Key(), w.Key()}
				}
				row, ok := rows[k]
				if !ok {
					row = &dixfile.PreviewRow{}
					if setLR {
						row.Word1, row.Word2 = w, s.Word
					} else {
						row.Word1, row.Word2 = s.Word, w
					}
					rows[k] = row
				}
				if setLR {
					row.ScoreLR = s.Score
				} else {
					row.ScoreRL = s.Score
				}
			}
		}
	}

	proposeSide(l1, lang1, lang2, true)
	proposeSide(l2, lang2, lang1, false)

	out := make([]dixfile.PreviewRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Word1.Lemma != out[j].Word1.Lemma {
			return out[i].Word1.Lemma < out[j].Word1.Lemma
		}
		return out[i].Word2.Lemma < out[j].Word2.Lemma
	})
	return out
}

func hasNeighborIn(g *transgraph.Graph, w word.Word, lang string) bool {
	for _, n := range g.Neighbors(w) {
		if n.Lang == lang {
			return true
		}
	}
	return false
}

// Tally is the four-way count the original tool's `addition` prints:
// how many of a language's nodes already have a translation, how many
// have none and none found, how many got a new one, and how many
// aren't in the graph at all.
type Tally struct {
	Existing int
	Failed   int
	New      int
	Absent   int
}

// NewPercent is the share of existing-translation nodes the search
// would additionally cover, as the original tool reports it.
func (t Tally) NewPercent() float64 {
	if t.Existing == 0 {
		return 0
	}
	return float64(t.New) / float64(t.Existing) * 100
}

// Addition computes the coverage Tally for words moving from srcLang
// to dstLang (component supplemented from the original `addition`):
// how much of the lexicon already translates, how much search could
// add, and how much search can't reach.
func (p *Pipeline) Addition(g *transgraph.Graph, words []word.Word, srcLang, dstLang string, cutoff int) Tally {
	var t Tally
	for _, w := range words {
		if !g.Has(w) {
			t.Absent++
			continue
		}
		if hasNeighborIn(g, w, dstLang) {
			t.Existing++
			continue
		}
		candidates, err := search.Candidates(g, w, dstLang, cutoff)
		if err == nil && len(candidates) > 0 {
			t.New++
		} else {
			t.Failed++
		}
	}
	return t
}

// Eval runs nIter independent evaluation iterations against graph g
// and returns each iteration's metrics. rng drives both the sampling
// shuffle inside eval.Run and is advanced once per iteration so
// repeated runs with the same seed are reproducible end to end.
func (p *Pipeline) Eval(ctx context.Context, rng *rand.Rand, g *transgraph.Graph, l1 []word.Word, lang1, lang2 string, cutoff, topn, nIter int) ([]eval.Metrics, error) {
	results := make([]eval.Metrics, 0, nIter)
	for i := 0; i < nIter; i++ {
		m, err := eval.Run(rng, g, l1, lang1, lang2, cutoff, topn)
		if err != nil {
			return results, err
		}
		results = append(results, m)
		if p.Store != nil {
			if _, serr := p.Store.SaveEvalRun(ctx, store.EvalRun{
				Lang1: lang1, Lang2: lang2, Cutoff: cutoff, TopN: topn, NIter: i + 1, Metrics: m,
			}); serr != nil {
				log.Printf("eval: save run %d: %v", i+1, serr)
			}
		}
	}
	return results, nil
}
