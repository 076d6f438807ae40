package main

import (
	"os"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/transgraph"
)

// shortlistLanguages returns the languages the working translation
// graph for (lang1, lang2) should include: lang1 and lang2 themselves
// plus up to shortlistSize intermediates from a previously generated
// config file. A missing config file yields just the direct pair, so
// `load` + `propose` still work without running `config` first on
// small test fixtures.
func shortlistLanguages(lang1, lang2 string, shortlistSize int) []string {
	langs := []string{lang1, lang2}
	seen := map[string]bool{lang1: true, lang2: true}

	f, err := os.Open(configPath(lang1, lang2))
	if err != nil {
		return langs
	}
	defer f.Close()

	rows, err := dixfile.ReadConfig(f)
	if err != nil {
		return langs
	}

	for i, r := range rows {
		if i >= shortlistSize {
			break
		}
		if !seen[r.Lang] {
			seen[r.Lang] = true
			langs = append(langs, r.Lang)
		}
	}
	return langs
}

// buildGraphForPair assembles the directed translation graph (spec
// §4.F) for lang1/lang2, unioning the edge lists of every pair drawn
// from the recommended shortlist.
func buildGraphForPair(lang1, lang2 string, shortlistSize int) (*transgraph.Graph, error) {
	langs := shortlistLanguages(lang1, lang2, shortlistSize)
	edges, err := loadEdgesForLanguages(langs)
	if err != nil {
		return nil, err
	}
	return transgraph.Build(edges), nil
}
