package eval

import (
	"math/rand/v2"
	"testing"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/transgraph"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

func w(lang, lemma string, atoms ...string) word.Word {
	return word.New(lang, lemma, []word.TagGroup{{word.Tags(atoms)}})
}

// buildGraph gives each mutual pair a third-language bridge neighbor.
// The original tool's one-variant filter requires a node to have more
// than one neighbor overall (len(ne) > 1) even though exactly one of
// them sits in the target language -- a direct two-node pair with no
// other connection never qualifies as "mutually unambiguous". The
// bridge also keeps the pair recoverable once twoNodeScore hides the
// direct edge, since an indirect two-hop path still exists.
func buildGraph() (*transgraph.Graph, []word.Word) {
	rusTable := w("rus", "stol", "n", "m")
	engTable := w("eng", "table", "n")
	rusCat := w("rus", "kot", "n", "m")
	engCat := w("eng", "cat", "n")
	bridgeTable := w("fra", "table", "n")
	bridgeCat := w("fra", "chat", "n")

	g := transgraph.Build([]dixfile.Edge{
		{Side: dixfile.SideBoth, Word1: rusTable, Word2: engTable},
		{Side: dixfile.SideBoth, Word1: rusTable, Word2: bridgeTable},
		{Side: dixfile.SideBoth, Word1: engTable, Word2: bridgeTable},
		{Side: dixfile.SideBoth, Word1: rusCat, Word2: engCat},
		{Side: dixfile.SideBoth, Word1: rusCat, Word2: bridgeCat},
		{Side: dixfile.SideBoth, Word1: engCat, Word2: bridgeCat},
	})
	return g, []word.Word{rusTable, rusCat}
}

// Scenario 6: a mutually-unambiguous pair recovered on both sides
// scores a perfect coefficient of 1.
func TestRunScoresPerfectMutualPair(t *testing.T) {
	g, l1 := buildGraph()
	rng := rand.New(rand.NewPCG(1, 1))

	metrics, err := Run(rng, g, l1, "rus", "eng", 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	if metrics.N == 0 {
		t.Fatal("expected at least one sampled pair")
	}
	if metrics.Precision != 1 || metrics.Recall != 1 || metrics.F1 != 1 {
		t.Fatalf("expected a perfect score for an isolated mutual pair, got %+v", metrics)
	}
}

func TestRunIsDeterministicForAFixedSeed(t *testing.T) {
	g1, l1a := buildGraph()
	g2, l1b := buildGraph()

	m1, err1 := Run(rand.New(rand.NewPCG(42, 7)), g1, l1a, "rus", "eng", 4, 0)
	m2, err2 := Run(rand.New(rand.NewPCG(42, 7)), g2, l1b, "rus", "eng", 4, 0)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if m1 != m2 {
		t.Fatalf("same seed produced different metrics: %+v vs %+v", m1, m2)
	}
}

func TestRunEmptySampleReportsError(t *testing.T) {
	g := transgraph.New()
	rng := rand.New(rand.NewPCG(1, 1))
	_, err := Run(rng, g, nil, "rus", "eng", 4, 0)
	if err == nil {
		t.Fatal("expected an error when there is nothing to sample")
	}
}
