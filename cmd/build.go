package cmd

import (
	"github.com/SooyeongHwang/centrifuge/internal/centrifuge"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildCmd is for building a searchable index out of reference genome FASTAs
var buildCmd = &cobra.Command{
	Use:                        "build",
	Short:                      "Build an index from reference genome FASTAs",
	Run:                        centrifuge.BuildCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"index"},
	Long: `
Build an FM-index over the reference genomes in one or more FASTA files and
write it to a single index file.

Each FASTA header should lead with the packed taxonomy id of its sequence,
as printed by 'centrifuge inspect'. Sequences without one are kept in the
index but classify as taxon 0.`,
}

// set flags
func init() {
	buildCmd.Flags().StringP("refs", "r", "", "comma separated reference FASTA files (optionally .gz)")
	buildCmd.Flags().StringP("out", "o", "", "output index file <.cfi>")
	buildCmd.Flags().Int("sample-rate", 32, "keep every Nth suffix-array value")
	buildCmd.Flags().Int("checkpoint-rate", 128, "index rows between occurrence checkpoints")

	viper.BindPFlag("index.sample-rate", buildCmd.Flags().Lookup("sample-rate"))
	viper.BindPFlag("index.checkpoint-rate", buildCmd.Flags().Lookup("checkpoint-rate"))

	rootCmd.AddCommand(buildCmd)
}
