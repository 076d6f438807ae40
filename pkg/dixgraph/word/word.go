// Package word defines the canonical lexical item (Word) and its
// morphological tag sets (Tags) that every other dixgraph package
// builds on: the monolingual unifier, the lexicon index, and both
// graphs all exchange Word values.
package word

import (
	"sort"
	"strings"
)

// Tags is an ordered set of atomic morphological tags annotating one
// reading of a word (e.g. ["n", "m", "sg"]). Order is preserved for
// emission but carries no meaning for comparison: two Tags are equal
// iff they contain the same atoms.
type Tags []string

func (t Tags) set() map[string]struct{} {
	m := make(map[string]struct{}, len(t))
	for _, a := range t {
		m[a] = struct{}{}
	}
	return m
}

// Subset reports whether t <= other, i.e. every atom of t is also an
// atom of other.
func (t Tags) Subset(other Tags) bool {
	os := other.set()
	for _, a := range t {
		if _, ok := os[a]; !ok {
			return false
		}
	}
	return true
}

// ProperSubset reports whether t < other: t <= other and other has at
// least one atom t does not.
func (t Tags) ProperSubset(other Tags) bool {
	return t.Subset(other) && len(other.set()) > len(t.set())
}

// SetEqual reports whether t and other contain exactly the same atoms.
func (t Tags) SetEqual(other Tags) bool {
	if len(t.set()) != len(other.set()) {
		return false
	}
	return t.Subset(other)
}

// Comparable reports whether t and other are related by the subset
// order in either direction (t <= other or other <= t).
func (t Tags) Comparable(other Tags) bool {
	return t.Subset(other) || other.Subset(t)
}

// Key returns a canonical, order-independent string for t, suitable
// for use as a map key or for deduplicating observations that only
// differ in atom order.
func (t Tags) Key() string {
	atoms := append([]string(nil), t...)
	sort.Strings(atoms)
	return strings.Join(atoms, "-")
}

// String renders t in emission order, hyphen-joined, matching the
// dix file wire format (§6).
func (t Tags) String() string {
	return strings.Join(t, "-")
}

// TagGroup is a maximal chain of mutually comparable Tags -- one
// reading of a word, expressed as increasingly specific annotations
// (e.g. n-m -> n-m-sg). It is the unit the monolingual unifier
// produces (spec §4.B) and the unit the mono dix file serializes
// between '$' separators.
type TagGroup []Tags

// Word is a canonical lexical item: a language, a lemma, and the
// tag-variant groups observed for it. Within a lexicon, (Lang, Lemma)
// appears at most once; Groups obeys the grouping property from
// spec §3 (mutually comparable within a group, incomparable across
// groups).
type Word struct {
	Lang   string
	Lemma  string
	Groups []TagGroup
}

// New builds a Word. An empty lemma is valid ("unknown lemma").
func New(lang, lemma string, groups []TagGroup) Word {
	return Word{Lang: lang, Lemma: lemma, Groups: groups}
}

// AllTags flattens Groups into the ordered sequence of Tags the data
// model describes in spec §3, preserving group adjacency.
func (w Word) AllTags() []Tags {
	var out []Tags
	for _, g := range w.Groups {
		out = append(out, g...)
	}
	return out
}

// Equal implements the Word equality from spec §3: same language and
// lemma, and either the full variant sequences match, or one side is
// an under-specified single-Tags query whose atoms are a subset of
// one of the other side's variants. This looseness is deliberate: it
// lets a caller hand the lexicon an occurrence carrying only partial
// tags and still resolve it to the fully-tagged canonical node.
//
// Equal is not transitive (an under-specified query can equal two
// canonical Words that are not equal to each other), so Word must
// never be used as a map key that relies on Equal semantics -- only
// on exact identity via Key.
func (w Word) Equal(o Word) bool {
	if w.Lang != o.Lang || w.Lemma != o.Lemma {
		return false
	}

	wt, ot := w.AllTags(), o.AllTags()
	if sequenceEqual(wt, ot) {
		return true
	}
	if len(ot) == 1 && containsSuperset(wt, ot[0]) {
		return true
	}
	if len(wt) == 1 && containsSuperset(ot, wt[0]) {
		return true
	}
	return false
}

func sequenceEqual(a, b []Tags) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].SetEqual(b[i]) {
			return false
		}
	}
	return true
}

func containsSuperset(haystack []Tags, needle Tags) bool {
	for _, t := range haystack {
		if needle.Subset(t) {
			return true
		}
	}
	return false
}

// Less implements the Word strict partial order from spec §3: a < b
// iff they share language and lemma and a's variant set is a proper
// subset of b's.
func (w Word) Less(o Word) bool {
	if w.Lang != o.Lang || w.Lemma != o.Lemma {
		return false
	}
	wa, oa := w.AllTags(), o.AllTags()
	return tagSetProperSubset(wa, oa)
}

func tagSetProperSubset(a, b []Tags) bool {
	aKeys := tagKeySet(a)
	bKeys := tagKeySet(b)
	for k := range aKeys {
		if _, ok := bKeys[k]; !ok {
			return false
		}
	}
	return len(bKeys) > len(aKeys)
}

func tagKeySet(ts []Tags) map[string]struct{} {
	m := make(map[string]struct{}, len(ts))
	for _, t := range ts {
		m[t.Key()] = struct{}{}
	}
	return m
}

// Key returns a canonical string identity for w, suitable for use as
// a map key or graph node identity. Unlike Equal, Key-based identity
// is exact: two Words with the same Key are the same canonical node.
func (w Word) Key() string {
	var b strings.Builder
	b.WriteString(w.Lang)
	b.WriteByte(0x1f)
	b.WriteString(w.Lemma)
	for _, g := range w.Groups {
		b.WriteByte(0x1f)
		for i, t := range g {
			if i > 0 {
				b.WriteByte('_')
			}
			// Key() (not String()) so that two atom orderings of the
			// same Tags set hash to the same node identity.
			b.WriteString(t.Key())
		}
	}
	return b.String()
}

// String renders a human-readable representation used for logging,
// e.g. "rus$stol$[n-m_n-m-sg$n-f-sg]".
func (w Word) String() string {
	if len(w.Groups) == 0 {
		return w.Lang + "$" + w.Lemma + "$-"
	}
	groups := make([]string, len(w.Groups))
	for i, g := range w.Groups {
		members := make([]string, len(g))
		for j, t := range g {
			members[j] = t.String()
		}
		groups[i] = strings.Join(members, "_")
	}
	return w.Lang + "$" + w.Lemma + "$[" + strings.Join(groups, "$") + "]"
}
