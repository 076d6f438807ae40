package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/pipeline"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/store/memstore"
)

var statsCmd = &cobra.Command{
	Use:   "stats <lang1> <lang2>",
	Short: "Report how much headroom lang1->lang2 has before running propose",
	Long: `stats is the supplemented addition() tally (SPEC_FULL.md §12,
original_source's addition): for every word in lang1's lexicon it reports
whether a translation into lang2 already exists, whether the search would
find a new one, whether the search fails, or whether the word isn't even in
the working graph -- so a reviewer can gauge the payoff of a full propose
run before paying for it.`,
	Args: cobra.ExactArgs(2),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	lang1, lang2 := args[0], args[1]

	profile, err := loadProfile()
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	words, err := loadWords(lang1)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	g, err := buildGraphForPair(lang1, lang2, profile.ShortlistSize)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	p := pipeline.New(memstore.New())
	t := p.Addition(g, words, lang1, lang2, profile.Cutoff)

	cmd.Printf("existing: %d\n", t.Existing)
	cmd.Printf("new (recoverable by search): %d (%.1f%% of existing)\n", t.New, t.NewPercent())
	cmd.Printf("failed (no candidates found): %d\n", t.Failed)
	cmd.Printf("absent (not in graph): %d\n", t.Absent)
	return nil
}
