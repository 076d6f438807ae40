package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/pipeline"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/store"
)

var proposeCmd = &cobra.Command{
	Use:   "propose <lang1> <lang2>",
	Short: "Search and score candidate translations, persisting the batch for review",
	Long: `propose runs candidate search and scoring (components G and H) for every
word in lang1 or lang2 missing a translation on the other side, and saves the
resulting batch of scored (word1, word2, scoreLR, scoreRL) rows to the store
configured in the run profile, printing the batch ID a reviewer can fetch it
by later.`,
	Args: cobra.ExactArgs(2),
	RunE: runPropose,
}

func init() {
	rootCmd.AddCommand(proposeCmd)
}

func runPropose(cmd *cobra.Command, args []string) error {
	lang1, lang2 := args[0], args[1]
	ctx := cmd.Context()

	profile, err := loadProfile()
	if err != nil {
		return fmt.Errorf("propose: %w", err)
	}

	l1, err := loadWords(lang1)
	if err != nil {
		return fmt.Errorf("propose: %w", err)
	}
	l2, err := loadWords(lang2)
	if err != nil {
		return fmt.Errorf("propose: %w", err)
	}
	g, err := buildGraphForPair(lang1, lang2, profile.ShortlistSize)
	if err != nil {
		return fmt.Errorf("propose: %w", err)
	}

	st, err := openStore(ctx, profile.Store)
	if err != nil {
		return fmt.Errorf("propose: %w", err)
	}
	defer st.Close()

	p := pipeline.New(st)
	rows := p.Propose(g, l1, l2, lang1, lang2, profile.Cutoff)

	id, err := st.SaveProposalBatch(ctx, store.ProposalBatch{
		Lang1: lang1, Lang2: lang2, Rows: rows, CreatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("propose: %w", err)
	}

	cmd.Printf("propose: %d candidate pairs saved as batch %s\n", len(rows), id)
	return nil
}
