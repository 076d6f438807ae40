package dixfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/direrr"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/lexicon"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

// Occurrence is one raw bilingual pair as read straight off a parsed
// dictionary: a single tag variant on each side, with a Side marking
// which direction(s) of the entry it is valid for.
type Occurrence struct {
	Side         Side
	Lang1, Lang2 string
	Lemma1       string
	Tags1        word.Tags
	Lemma2       string
	Tags2        word.Tags
}

// BuildEdges is component D: it resolves every raw Occurrence against
// the two languages' lexicon indices, replacing the partial tag query
// with the canonical, fully-tagged Word it names, and emits one Edge
// per occurrence that resolves on both sides. Occurrences that miss
// either index are dropped and counted, never aborting the batch.
func BuildEdges(occs []Occurrence, idx1, idx2 *lexicon.Index) (edges []Edge, misses int) {
	for _, o := range occs {
		w1, ok1 := idx1.Find(o.Lang1, o.Lemma1, o.Tags1)
		w2, ok2 := idx2.Find(o.Lang2, o.Lemma2, o.Tags2)
		if !ok1 || !ok2 {
			misses++
			continue
		}
		edges = append(edges, Edge{Side: o.Side, Word1: w1, Word2: w2})
	}
	return edges, misses
}

// BuildEdgesStrict is the same resolution as BuildEdges but reports
// direrr.ErrNodeNotFound instead of silently counting a miss, for
// callers that need to treat an unresolved occurrence as fatal (e.g.
// validating a hand-curated occurrence list before committing it).
func BuildEdgesStrict(occs []Occurrence, idx1, idx2 *lexicon.Index) ([]Edge, error) {
	edges, misses := BuildEdges(occs, idx1, idx2)
	if misses > 0 {
		return edges, direrr.ErrNodeNotFound
	}
	return edges, nil
}

// ReadOccurrences parses the raw, pre-resolution bidix tuple stream the
// out-of-scope bilingual parser hands to `load_file` (spec.md §1, §4.D):
// same seven tab-separated columns as an edge-list file, but Tags1/Tags2
// may name only a partial reading that BuildEdges still has to resolve
// against each side's lexicon.Index. Malformed lines are skipped, not
// fatal to the read.
func ReadOccurrences(r io.Reader) ([]Occurrence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var occs []Occurrence
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			continue
		}
		occs = append(occs, Occurrence{
			Side:   Side(fields[0]),
			Lang1:  fields[1],
			Lemma1: fields[2],
			Tags1:  parseTags(fields[3]),
			Lang2:  fields[4],
			Lemma2: fields[5],
			Tags2:  parseTags(fields[6]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read occurrences: %w", err)
	}
	return occs, nil
}

// ReadObservations parses the per-language tag-observation stream the
// monolingual unifier consumes (spec.md §4.B): one `lang\tlemma\ttags`
// record per reading seen for that lemma across every bilingual source
// touching lang. Malformed lines are skipped.
func ReadObservations(r io.Reader) ([]lexicon.Observation, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var obs []lexicon.Observation
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			continue
		}
		obs = append(obs, lexicon.Observation{
			Lang:  fields[0],
			Lemma: fields[1],
			Tags:  parseTags(fields[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read observations: %w", err)
	}
	return obs, nil
}
