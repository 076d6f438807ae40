package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixconfig"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/direrr"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/lexicon"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/store"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/store/memstore"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/store/sqlite"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

func monodixPath(lang string) string {
	return filepath.Join(flagDir, "monodix", lang+".dix")
}

func edgeListPath(lang1, lang2 string) string {
	return filepath.Join(flagDir, lang1+"-"+lang2)
}

func statsPath() string {
	return filepath.Join(flagDir, "stats.csv")
}

func configPath(lang1, lang2 string) string {
	return filepath.Join(flagDir, lang1+"-"+lang2+"-config")
}

func previewPath(lang1, lang2 string) string {
	return filepath.Join(flagDir, lang1+"-"+lang2+"-preview")
}

// loadProfile loads the run profile named by --profile, falling back
// to dixconfig's defaults when the flag is unset.
func loadProfile() (dixconfig.Profile, error) {
	return dixconfig.Load(flagProfile)
}

// loadWords loads a language's monodix file and returns its Words in
// file order, ready to index or walk.
func loadWords(lang string) ([]word.Word, error) {
	f, err := os.Open(monodixPath(lang))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", direrr.ErrMissingFile, monodixPath(lang))
	}
	defer f.Close()

	entries, err := dixfile.ReadMonodix(f)
	if err != nil {
		return nil, err
	}
	words := make([]word.Word, len(entries))
	for i, e := range entries {
		words[i] = word.New(lang, e.Lemma, e.Groups)
	}
	return words, nil
}

// loadIndex loads a language's lexicon into a lookup Index.
func loadIndex(lang string) (*lexicon.Index, error) {
	words, err := loadWords(lang)
	if err != nil {
		return nil, err
	}
	return lexicon.NewIndex(words), nil
}

// loadEdges reads one pair's edge-list file, if present; a missing
// file yields an empty edge set rather than an error, since not every
// pair in a shortlist necessarily has direct bilingual data.
func loadEdges(lang1, lang2 string) ([]dixfile.Edge, error) {
	f, err := os.Open(edgeListPath(lang1, lang2))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return dixfile.ReadEdgeList(f)
}

// loadEdgesForLanguages reads and merges the edge lists for every
// unordered pair drawn from langs, the set of languages admitted into
// a working translation graph (spec §4.F).
func loadEdgesForLanguages(langs []string) ([]dixfile.Edge, error) {
	var all []dixfile.Edge
	for i := 0; i < len(langs); i++ {
		for j := i + 1; j < len(langs); j++ {
			edges, err := loadEdges(langs[i], langs[j])
			if err != nil {
				return nil, err
			}
			if edges == nil {
				edges, err = loadEdges(langs[j], langs[i])
				if err != nil {
					return nil, err
				}
			}
			all = append(all, edges...)
		}
	}
	return all, nil
}

// openStore opens the backing store named by a run profile.
func openStore(ctx context.Context, cfg dixconfig.StoreConfig) (store.Store, error) {
	switch cfg.Driver {
	case "", "memory":
		return memstore.New(), nil
	case "sqlite":
		return sqlite.Open(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
