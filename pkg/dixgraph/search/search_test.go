package search

import (
	"testing"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/transgraph"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

func w(lang, lemma string, atoms ...string) word.Word {
	return word.New(lang, lemma, []word.TagGroup{{word.Tags(atoms)}})
}

// Scenario 4: eng-rus-spa chain; searching from the eng node for spa
// candidates should surface the spa word without walking past it.
func TestCandidatesStopsAtTargetLanguage(t *testing.T) {
	eng := w("eng", "table", "n")
	rus := w("rus", "stol", "n", "m")
	spa := w("spa", "mesa", "n")
	g := transgraph.Build([]dixfile.Edge{
		{Side: dixfile.SideBoth, Word1: eng, Word2: rus},
		{Side: dixfile.SideBoth, Word1: rus, Word2: spa},
	})

	got, err := Candidates(g, eng, "spa", DefaultCutoff)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].Equal(spa) {
		t.Fatalf("Candidates = %v, want [spa]", got)
	}
}

func TestCandidatesMissingSourceReturnsErrNodeNotFound(t *testing.T) {
	g := transgraph.New()
	_, err := Candidates(g, w("eng", "ghost", "n"), "spa", DefaultCutoff)
	if err == nil {
		t.Fatal("expected an error for an absent source node")
	}
}

func TestScoreMultiplePathsAccumulate(t *testing.T) {
	eng := w("eng", "table", "n")
	rus := w("rus", "stol", "n", "m")
	fra := w("fra", "table", "n")
	spa := w("spa", "mesa", "n")
	g := transgraph.Build([]dixfile.Edge{
		{Side: dixfile.SideBoth, Word1: eng, Word2: rus},
		{Side: dixfile.SideBoth, Word1: rus, Word2: spa},
		{Side: dixfile.SideBoth, Word1: eng, Word2: fra},
		{Side: dixfile.SideBoth, Word1: fra, Word2: spa},
	})

	noPathFits := Score(g, eng, spa, 1)
	bothPathsFit := Score(g, eng, spa, 2)
	if bothPathsFit <= noPathFits {
		t.Fatalf("expected score to grow once both two-hop paths fit the cutoff: %v vs %v", noPathFits, bothPathsFit)
	}
}

func TestSelectTopN(t *testing.T) {
	ranked := []Scored{
		{Word: w("spa", "a", "n"), Score: 0.9},
		{Word: w("spa", "b", "n"), Score: 0.5},
		{Word: w("spa", "c", "n"), Score: 0.1},
	}
	got := Select(ranked, DefaultCutoff, 2)
	if len(got) != 2 || got[0].Score != 0.9 || got[1].Score != 0.5 {
		t.Fatalf("Select(topn=2) = %+v", got)
	}
}

// Scenario 5: with fewer than 10 candidates, "auto" mode pads the
// average with a minimal per-slot contribution before filtering.
func TestSelectAutoPadsShortCandidateLists(t *testing.T) {
	ranked := []Scored{
		{Word: w("spa", "a", "n"), Score: 0.9},
		{Word: w("spa", "b", "n"), Score: 0.05},
	}
	got := Select(ranked, DefaultCutoff, 0)
	for _, s := range got {
		if s.Score <= 0.05 && len(got) == len(ranked) {
			t.Fatalf("expected padding to exclude the weak candidate, got %+v", got)
		}
	}
	if len(got) == 0 {
		t.Fatal("expected at least the dominant candidate to survive")
	}
}

// With more than 10 candidates, spec §4.H's auto mean must average
// only the top 10 scores. An 11th-ranked candidate folded into the
// sum would inflate the mean and could wrongly exclude a genuine
// top-10 candidate that belongs above it.
func TestSelectAutoMeanIgnoresCandidatesBeyondTopTen(t *testing.T) {
	ranked := []Scored{{Word: w("spa", "top", "n"), Score: 0.55}}
	for i := 0; i < 9; i++ {
		ranked = append(ranked, Scored{Word: w("spa", string(rune('a'+i)), "n"), Score: 0.5})
	}
	ranked = append(ranked, Scored{Word: w("spa", "eleventh", "n"), Score: 0.49})

	got := Select(ranked, DefaultCutoff, 0)
	if len(got) != 1 || got[0].Word.Lemma != "top" {
		t.Fatalf("Select = %+v, want only the 0.55-scoring candidate above the top-10 mean", got)
	}
}
