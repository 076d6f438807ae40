package langgraph

import (
	"testing"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
)

// Scenario 3: a chain eng-cat-spa should recommend cat as an
// intermediate language between eng and spa.
func TestRecommendFindsIntermediateLanguage(t *testing.T) {
	rows := []dixfile.StatsRow{
		{Lang1: "eng", Lang2: "cat", Both: 500},
		{Lang1: "cat", Lang2: "spa", Both: 500},
	}
	g := Build(rows)

	recs := Recommend(g, "eng", "spa", 10)
	found := false
	for _, r := range recs {
		if r.Lang == "cat" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected cat among recommendations, got %+v", recs)
	}
}

func TestRecommendUnknownLanguageIsEmpty(t *testing.T) {
	rows := []dixfile.StatsRow{{Lang1: "eng", Lang2: "cat", Both: 500}}
	g := Build(rows)

	if recs := Recommend(g, "eng", "xyz", 10); recs != nil {
		t.Fatalf("expected no recommendations for an absent language, got %+v", recs)
	}
}

func TestRecommendDropsLowCoverageEdges(t *testing.T) {
	// A pair with almost no shared entries produces weight >= 1 and
	// must not appear in the graph at all.
	rows := []dixfile.StatsRow{{Lang1: "eng", Lang2: "cat", Both: 0, LR: 0, RL: 0}}
	g := Build(rows)
	if _, ok := g.idOf["eng"]; ok {
		t.Fatal("expected a near-empty pair to be dropped before adding any node")
	}
}
