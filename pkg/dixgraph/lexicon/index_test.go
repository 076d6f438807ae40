package lexicon

import (
	"testing"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

// Scenario 2: lexicon has Word("rus","stol",[[n-m,n-m-sg]]).
// Query (rus,stol,n) must return the stored word.
func TestIndexFindLooseMatch(t *testing.T) {
	stored := word.New("rus", "stol", []word.TagGroup{{word.Tags{"n", "m"}, word.Tags{"n", "m", "sg"}}})
	idx := NewIndex([]word.Word{stored})

	got, ok := idx.Find("rus", "stol", word.Tags{"n"})
	if !ok {
		t.Fatal("expected to find a loose match")
	}
	if !got.Equal(stored) {
		t.Fatalf("got %v, want %v", got, stored)
	}
}

func TestIndexFindExactSingleVariant(t *testing.T) {
	stored := word.New("eng", "cat", []word.TagGroup{{word.Tags{"n", "sg"}}})
	idx := NewIndex([]word.Word{stored})

	got, ok := idx.Find("eng", "cat", word.Tags{"sg", "n"})
	if !ok || !got.Equal(stored) {
		t.Fatalf("got %v, %v; want %v, true", got, ok, stored)
	}
}

func TestIndexFindAbsent(t *testing.T) {
	idx := NewIndex(nil)
	if _, ok := idx.Find("eng", "dog", word.Tags{"n"}); ok {
		t.Fatal("expected absence in an empty index")
	}
}

// Property 3: for any Word w in the lexicon, and any Tags t such that
// t <= w.variants[i] for some i, Find(w.lang, w.lemma, t) returns w.
func TestIndexLookupSoundness(t *testing.T) {
	words := []word.Word{
		word.New("rus", "stol", []word.TagGroup{{word.Tags{"n", "m"}, word.Tags{"n", "m", "sg"}}, {word.Tags{"n", "f", "sg"}}}),
		word.New("eng", "cat", []word.TagGroup{{word.Tags{"n", "sg"}}}),
	}
	idx := NewIndex(words)

	for _, w := range words {
		for _, variant := range w.AllTags() {
			for l := 0; l <= len(variant); l++ {
				sub := append(word.Tags{}, variant[:l]...)
				got, ok := idx.Find(w.Lang, w.Lemma, sub)
				if !ok {
					t.Fatalf("Find(%s,%s,%v) missed, want hit into %v", w.Lang, w.Lemma, sub, w)
				}
				if !got.Equal(w) {
					t.Fatalf("Find(%s,%s,%v) = %v, want %v", w.Lang, w.Lemma, sub, got, w)
				}
			}
		}
	}
}
