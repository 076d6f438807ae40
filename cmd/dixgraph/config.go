package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/langgraph"
)

var configCmd = &cobra.Command{
	Use:   "config <lang1> <lang2>",
	Short: "Rank intermediate languages worth adding to a pair's translation graph",
	Long: `config is component E (spec.md §4.E, original_source's
get_relevant_languages): it builds the weighted language meta-graph from
stats.csv, finds up to 300 shortest simple paths between lang1 and lang2, and
writes every language that appears in one of those paths -- sorted ascending
by the length of its first appearance -- to "<lang1>-<lang2>-config".

graph.py's own "recommend" subparser points at a function the original tool
never defines, so this command takes the name of the subparser that actually
carries the recommendation behavior ("config").`,
	Args: cobra.ExactArgs(2),
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	lang1, lang2 := args[0], args[1]

	f, err := os.Open(statsPath())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	rows, err := dixfile.ReadStats(f)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	g := langgraph.Build(rows)
	recs := langgraph.Recommend(g, lang1, lang2, langgraph.DefaultK)
	if len(recs) == 0 {
		cmd.Printf("config: no path found between %s and %s\n", lang1, lang2)
	}

	cfgRows := make([]dixfile.ConfigRow, len(recs))
	for i, r := range recs {
		cfgRows[i] = dixfile.ConfigRow{PathLen: r.Length, Lang: r.Lang, Path: r.Path}
	}

	out, err := os.Create(configPath(lang1, lang2))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer out.Close()
	return dixfile.WriteConfig(out, cfgRows)
}
