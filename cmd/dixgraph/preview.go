package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/pipeline"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/store/memstore"
)

var previewCmd = &cobra.Command{
	Use:   "preview <lang1> <lang2>",
	Short: "Write proposed translations to a human-reviewable preview file",
	Long: `preview is original_source's get_translations: it runs the same search
and scoring as propose, but writes the scored rows straight to the
"<lang1>-<lang2>-preview" wire format (spec.md §6) instead of a store batch,
the hand-off point before convert/merge.`,
	Args: cobra.ExactArgs(2),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	lang1, lang2 := args[0], args[1]

	profile, err := loadProfile()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	l1, err := loadWords(lang1)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	l2, err := loadWords(lang2)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	g, err := buildGraphForPair(lang1, lang2, profile.ShortlistSize)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	// get_translations in the original tool hardcodes cutoff=4 in its
	// search calls regardless of the cutoff its caller passes in -- an
	// Open Question this repository preserves as-is rather than "fixing"
	// (DESIGN.md), so preview ignores the run profile's configured
	// cutoff where propose does not.
	p := pipeline.New(memstore.New())
	rows := p.Propose(g, l1, l2, lang1, lang2, 4)

	out, err := os.Create(previewPath(lang1, lang2))
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer out.Close()

	cmd.Printf("preview: %d candidate pairs\n", len(rows))
	return dixfile.WritePreview(out, rows)
}
