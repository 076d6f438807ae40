package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "dixgraph",
	Short: "Infer plausible bilingual translations from a multilingual dictionary graph",
	Long: `dixgraph unifies per-language morphological tag observations pulled from
many bilingual dictionaries into a canonical lexicon, assembles a translation
graph across a recommended set of intermediate languages, and searches that
graph for plausible new translation entries between a source and target
language, ranked by a path-count confidence score.

It does not fetch dictionaries or parse .dix XML -- those stay the job of an
upstream collaborator. dixgraph starts from already-extracted observation and
occurrence streams (see each subcommand's --help) and the monodix/edge-list/
stats.csv/config/preview file formats documented alongside this tool.`,
}

var (
	flagDir     string
	flagProfile string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", ".", "dictionary working directory (monodix/, edge lists, stats.csv)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "path to a YAML run profile (defaults if unset)")
}

// Execute runs the dixgraph CLI; the caller decides the process exit
// code based on the returned error.
func Execute() error {
	rootCmd.Version = version
	return rootCmd.Execute()
}
