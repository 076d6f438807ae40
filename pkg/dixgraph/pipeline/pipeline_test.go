package pipeline

import (
	"testing"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/transgraph"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

func w(lang, lemma string, atoms ...string) word.Word {
	return word.New(lang, lemma, []word.TagGroup{{word.Tags(atoms)}})
}

func TestAdditionTallyClassifiesNodes(t *testing.T) {
	eng1 := w("eng", "table", "n")
	rus1 := w("rus", "stol", "n", "m")
	eng2 := w("eng", "isolated", "n")
	fra2 := w("fra", "isole", "n") // keeps eng2 present in the graph with no path to rus
	g := transgraph.Build([]dixfile.Edge{
		{Side: dixfile.SideBoth, Word1: eng1, Word2: rus1},
		{Side: dixfile.SideBoth, Word1: eng2, Word2: fra2},
	})

	p := New(nil)
	tally := p.Addition(g, []word.Word{eng1, eng2, w("eng", "ghost", "n")}, "eng", "rus", 4)

	if tally.Existing != 1 {
		t.Errorf("Existing = %d, want 1", tally.Existing)
	}
	if tally.Absent != 1 {
		t.Errorf("Absent = %d, want 1", tally.Absent)
	}
	if tally.Failed != 1 {
		t.Errorf("Failed = %d, want 1 (isolated node with no reachable rus neighbor)", tally.Failed)
	}
}

func TestProposeMergesBothDirections(t *testing.T) {
	eng := w("eng", "table", "n")
	rus := w("rus", "stol", "n", "m")
	spa := w("spa", "mesa", "n")
	g := transgraph.Build([]dixfile.Edge{
		{Side: dixfile.SideBoth, Word1: eng, Word2: rus},
		{Side: dixfile.SideBoth, Word1: rus, Word2: spa},
	})

	p := New(nil)
	rows := p.Propose(g, []word.Word{eng}, []word.Word{spa}, "eng", "spa", 4)
	if len(rows) == 0 {
		t.Fatal("expected at least one proposed pair via the rus bridge")
	}
	found := false
	for _, r := range rows {
		if r.Word1.Equal(eng) && r.Word2.Equal(spa) {
			found = true
			if r.ScoreLR == 0 {
				t.Error("expected a nonzero LR score for the eng->spa direction")
			}
		}
	}
	if !found {
		t.Fatalf("expected eng/spa pair among proposals, got %+v", rows)
	}
}
