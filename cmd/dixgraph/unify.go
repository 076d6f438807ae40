package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/lexicon"
)

var unifyCmd = &cobra.Command{
	Use:   "unify <lang> <observations-file>",
	Short: "Merge per-lemma tag observations into a canonical monodix file",
	Long: `unify reads a lang\tlemma\ttags observation stream -- one record per
reading seen for a lemma across every bilingual source touching lang -- and
runs the monolingual unification pass (spec.md §4.B) to compress it into the
minimal set of tag-variant groups per lemma, written to monodix/<lang>.dix.`,
	Args: cobra.ExactArgs(2),
	RunE: runUnify,
}

func init() {
	rootCmd.AddCommand(unifyCmd)
}

func runUnify(cmd *cobra.Command, args []string) error {
	lang, obsPath := args[0], args[1]

	in, err := os.Open(obsPath)
	if err != nil {
		return fmt.Errorf("unify: %w", err)
	}
	defer in.Close()

	obs, err := dixfile.ReadObservations(in)
	if err != nil {
		return fmt.Errorf("unify: %w", err)
	}

	words := lexicon.Unify(obs)
	cmd.Printf("unify: %d observations -> %d words for %s\n", len(obs), len(words), lang)

	if err := os.MkdirAll(flagDir+"/monodix", 0o755); err != nil {
		return fmt.Errorf("unify: %w", err)
	}
	out, err := os.Create(monodixPath(lang))
	if err != nil {
		return fmt.Errorf("unify: %w", err)
	}
	defer out.Close()

	entries := make([]dixfile.MonodixEntry, len(words))
	for i, w := range words {
		entries[i] = dixfile.MonodixEntry{Lemma: w.Lemma, Groups: w.Groups}
	}
	return dixfile.WriteMonodix(out, entries)
}
