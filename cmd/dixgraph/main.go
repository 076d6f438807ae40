// Command dixgraph runs the translation-inference pipeline of
// pkg/dixgraph end to end: unifying monolingual lexicons, building the
// language-pair recommender, assembling a translation graph, and
// searching/scoring/evaluating candidate translations for a language
// pair (spec.md §6, original_source/graph.py).
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
