package transgraph

import (
	"testing"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

func w(lang, lemma string, atoms ...string) word.Word {
	return word.New(lang, lemma, []word.TagGroup{{word.Tags(atoms)}})
}

func TestBuildBothSideIsBidirectional(t *testing.T) {
	rus := w("rus", "stol", "n", "m")
	eng := w("eng", "table", "n")
	g := Build([]dixfile.Edge{{Side: dixfile.SideBoth, Word1: rus, Word2: eng}})

	if got := g.Neighbors(rus); len(got) != 1 || !got[0].Equal(eng) {
		t.Fatalf("rus -> %v, want [eng]", got)
	}
	if got := g.Neighbors(eng); len(got) != 1 || !got[0].Equal(rus) {
		t.Fatalf("eng -> %v, want [rus]", got)
	}
}

func TestBuildLROnlyIsOneDirectional(t *testing.T) {
	rus := w("rus", "stol", "n", "m")
	eng := w("eng", "table", "n")
	g := Build([]dixfile.Edge{{Side: dixfile.SideLR, Word1: rus, Word2: eng}})

	if got := g.Neighbors(rus); len(got) != 1 {
		t.Fatalf("rus -> %v, want [eng]", got)
	}
	if got := g.Neighbors(eng); len(got) != 0 {
		t.Fatalf("eng -> %v, want none (LR only)", got)
	}
}

func TestRemoveEdgeClearsBothDirections(t *testing.T) {
	rus := w("rus", "stol", "n", "m")
	eng := w("eng", "table", "n")
	g := Build([]dixfile.Edge{{Side: dixfile.SideBoth, Word1: rus, Word2: eng}})

	g.RemoveEdge(rus, eng)
	if got := g.Neighbors(rus); len(got) != 0 {
		t.Fatalf("expected no neighbors after RemoveEdge, got %v", got)
	}
	if got := g.Neighbors(eng); len(got) != 0 {
		t.Fatalf("expected no neighbors after RemoveEdge, got %v", got)
	}
}

func TestSameWordIsOneNode(t *testing.T) {
	rus := w("rus", "stol", "n", "m")
	eng := w("eng", "table", "n")
	spa := w("spa", "mesa", "n")
	g := Build([]dixfile.Edge{
		{Side: dixfile.SideBoth, Word1: rus, Word2: eng},
		{Side: dixfile.SideBoth, Word1: rus, Word2: spa},
	})

	id, _ := g.NodeID(rus)
	if got := g.Neighbors(rus); len(got) != 2 {
		t.Fatalf("expected rus to have 2 neighbors sharing one node id %d, got %v", id, got)
	}
}
