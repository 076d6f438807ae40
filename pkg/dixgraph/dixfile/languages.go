package dixfile

import (
	"sort"
	"strings"
)

// Languages derives the set of distinct language codes referenced by a
// list of bilingual dictionary filenames (e.g.
// "apertium-eng-spa.eng-spa.dix"), by taking the two dash-joined codes
// before the final extension.
//
// This is a build-time artifact computed once over a dictionary file
// list, not a package-level global: callers that need the set more
// than once should cache the returned slice themselves.
func Languages(filenames []string) []string {
	seen := make(map[string]struct{})
	for _, name := range filenames {
		for _, lang := range langPairFromFilename(name) {
			seen[lang] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for lang := range seen {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func langPairFromFilename(name string) []string {
	base := name
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	parts := strings.Split(base, ".")
	if len(parts) < 2 {
		return nil
	}
	pair := parts[len(parts)-2]
	return strings.Split(pair, "-")
}
