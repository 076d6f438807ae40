package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
)

var convertCmd = &cobra.Command{
	Use:   "convert <lang1> <lang2>",
	Short: "Turn a preview file into an insertable dictionary XML section",
	Long: `convert is the supplemented convert_to_dix operation (SPEC_FULL.md
§12): it reads "<lang1>-<lang2>-preview" and emits a <section> of bilingual
entries ready to fold into a dictionary for human review, writing to stdout.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	lang1, lang2 := args[0], args[1]

	f, err := os.Open(previewPath(lang1, lang2))
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	defer f.Close()

	rows, err := dixfile.ReadPreview(f, lang1, lang2)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	return dixfile.ConvertPreview(cmd.OutOrStdout(), rows)
}
