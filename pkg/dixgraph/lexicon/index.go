package lexicon

import (
	"sort"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

// Index is the per-language store from spec §4.C: a hash map keyed by
// exact Word identity for single-variant words, plus a linear-scan
// list for multi-variant words. Word's loose Equal is not a valid
// hash-equality relation (an under-specified query can Equal several
// stored Words without them being equal to each other), so the two
// tiers cannot be collapsed into one map.
type Index struct {
	exact map[string]word.Word
	multi []word.Word
}

// NewIndex builds an Index from a set of canonical Words, typically
// the output of Unify for one language.
func NewIndex(words []word.Word) *Index {
	idx := &Index{exact: make(map[string]word.Word)}
	for _, w := range words {
		idx.Add(w)
	}
	return idx
}

// Add inserts a canonical Word, classifying it by its total number of
// tag variants: exactly one goes to the hash map, more than one to
// the linear-scan list.
func (idx *Index) Add(w word.Word) {
	if len(w.AllTags()) > 1 {
		idx.multi = append(idx.multi, w)
		return
	}
	idx.exact[w.Key()] = w
}

// Find resolves an occurrence (lang, lemma, tagsQuery) to its fully
// specified canonical node, implementing the lookup procedure of
// spec §4.C:
//
//  1. try the hash map keyed by the exact query;
//  2. try the hash map keyed by (lang, lemma, empty Tags);
//  3. linear-scan the multi-variant list using Word's loose equality;
//  4. scan the hash tier in key order with the same loose equality,
//     since a single-variant word queried with a strict subset of its
//     tags has a different Key than the query;
//  5. otherwise report absence.
func (idx *Index) Find(lang, lemma string, tagsQuery word.Tags) (word.Word, bool) {
	query := word.New(lang, lemma, []word.TagGroup{{tagsQuery}})
	if w, ok := idx.exact[query.Key()]; ok {
		return w, true
	}

	empty := word.New(lang, lemma, []word.TagGroup{{word.Tags{}}})
	if w, ok := idx.exact[empty.Key()]; ok {
		return w, true
	}

	for _, w := range idx.multi {
		if w.Equal(query) {
			return w, true
		}
	}

	for _, w := range idx.All()[:len(idx.exact)] {
		if w.Equal(query) {
			return w, true
		}
	}
	return word.Word{}, false
}

// Len returns the total number of Words held by the index.
func (idx *Index) Len() int {
	return len(idx.exact) + len(idx.multi)
}

// All returns every Word in the index: the hash tier sorted by
// canonical key (map iteration order is not stable in Go), followed
// by the scan tier in insertion order, so an entire language's
// lexicon can be walked deterministically.
func (idx *Index) All() []word.Word {
	keys := make([]string, 0, len(idx.exact))
	for k := range idx.exact {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]word.Word, 0, idx.Len())
	for _, k := range keys {
		out = append(out, idx.exact[k])
	}
	out = append(out, idx.multi...)
	return out
}
