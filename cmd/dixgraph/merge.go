package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
)

var (
	mergeLang1 []string
	mergeLang2 []string
)

var mergeCmd = &cobra.Command{
	Use:   "merge --lang1 a --lang1 b --lang2 x --lang2 y",
	Short: "Fold several dialect-specific preview files into one tagged proposal file",
	Long: `merge is the supplemented dialect-merge operation (SPEC_FULL.md §12,
original_source's merge): for each (lang1[i], lang2[i]) pair it converts that
pair's preview file to a dictionary section and tags every entry with vl/vr
dialect attributes, concatenating the results to stdout.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringArrayVar(&mergeLang1, "lang1", nil, "left-side language for each dialect pair (repeatable)")
	mergeCmd.Flags().StringArrayVar(&mergeLang2, "lang2", nil, "right-side language for each dialect pair (repeatable)")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	if len(mergeLang1) != len(mergeLang2) || len(mergeLang1) == 0 {
		return fmt.Errorf("merge: --lang1 and --lang2 must be given the same number of times, at least once")
	}

	fragments := make([]dixfile.DialectFragment, len(mergeLang1))
	for i, lang1 := range mergeLang1 {
		lang2 := mergeLang2[i]

		f, err := os.Open(previewPath(lang1, lang2))
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}
		rows, err := dixfile.ReadPreview(f, lang1, lang2)
		f.Close()
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}

		var buf bytes.Buffer
		if err := dixfile.ConvertPreview(&buf, rows); err != nil {
			return fmt.Errorf("merge: %w", err)
		}
		fragments[i] = dixfile.DialectFragment{Lang1: lang1, Lang2: lang2, Section: buf.String()}
	}

	return dixfile.MergeDialects(cmd.OutOrStdout(), fragments)
}
