package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
)

var loadCmd = &cobra.Command{
	Use:   "load <lang1> <lang2> <occurrences-file>",
	Short: "Resolve raw bilingual occurrences into a canonical edge-list file",
	Long: `load is component D (spec.md §4.D, original_source's load_file): it
resolves each raw (side, wordL, wordR) occurrence against lang1's and lang2's
monodix lexicons, drops occurrences that miss on either side, and writes the
resolved pairs to an edge-list file named "<lang1>-<lang2>" in --dir.`,
	Args: cobra.ExactArgs(3),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	lang1, lang2, occPath := args[0], args[1], args[2]

	idx1, err := loadIndex(lang1)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	idx2, err := loadIndex(lang2)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	f, err := os.Open(occPath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer f.Close()

	occs, err := dixfile.ReadOccurrences(f)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	edges, misses := dixfile.BuildEdges(occs, idx1, idx2)
	cmd.Printf("load: %d occurrences -> %d edges (%d unresolved)\n", len(occs), len(edges), misses)

	out, err := os.Create(edgeListPath(lang1, lang2))
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer out.Close()
	return dixfile.WriteEdgeList(out, edges)
}
