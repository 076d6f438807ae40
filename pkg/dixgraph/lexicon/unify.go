package lexicon

import (
	"sort"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

// Observation is one (lang, lemma, tags) reading seen in a bilingual
// source: a source covering (X,Y) contributes one Observation per
// side to X's and Y's streams respectively (spec §4.B).
type Observation struct {
	Lang  string
	Lemma string
	Tags  word.Tags
}

// Unify merges all tag observations for every (lang, lemma) pair
// present in obs into one canonical Word per pair, compressing the
// raw tag frequencies into the minimal set of tag-variant groups
// (spec §4.B). Unify is deterministic and idempotent: running it
// twice on the same observation stream yields byte-for-byte identical
// output, because both the per-lemma aggregation and the grouping
// sort below only ever depend on input order and counts.
func Unify(obs []Observation) []word.Word {
	type key struct{ lang, lemma string }

	tagsByLemma := make(map[key][]word.Tags)
	var order []key
	for _, o := range obs {
		k := key{o.Lang, o.Lemma}
		if _, seen := tagsByLemma[k]; !seen {
			order = append(order, k)
		}
		tagsByLemma[k] = append(tagsByLemma[k], o.Tags)
	}

	words := make([]word.Word, 0, len(order))
	for _, k := range order {
		groups := groupTags(tagsByLemma[k])
		words = append(words, word.New(k.lang, k.lemma, groups))
	}
	return words
}

type tagCount struct {
	tags  word.Tags
	count int
}

// groupTags implements the unifier's core algorithm (spec §4.B):
// count frequency of each distinct Tags, sort descending by
// (count, -len) with shorter-first as a tiebreak, then greedily place
// each Tags into the first existing group every one of whose members
// it is comparable to (proper-subset in either direction);
// incomparable Tags start a new group.
func groupTags(occurrences []word.Tags) []word.TagGroup {
	byKey := make(map[string]int) // Tags key -> index into entries
	var entries []tagCount

	for _, t := range occurrences {
		k := t.Key()
		if idx, ok := byKey[k]; ok {
			entries[idx].count++
			continue
		}
		byKey[k] = len(entries)
		entries = append(entries, tagCount{tags: t, count: 1})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return len(entries[i].tags) < len(entries[j].tags)
	})

	var groups []word.TagGroup
	for _, e := range entries {
		placed := false
		for gi, group := range groups {
			if allComparable(group, e.tags) {
				groups[gi] = append(groups[gi], e.tags)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, word.TagGroup{e.tags})
		}
	}
	return groups
}

func allComparable(group word.TagGroup, t word.Tags) bool {
	for _, k := range group {
		if !k.ProperSubset(t) && !t.ProperSubset(k) {
			return false
		}
	}
	return true
}
