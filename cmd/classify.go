package cmd

import (
	"runtime"

	"github.com/SooyeongHwang/centrifuge/internal/centrifuge"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// classifyCmd is for classifying sequencing reads against a built index
var classifyCmd = &cobra.Command{
	Use:                        "classify",
	Short:                      "Classify reads against an index",
	Run:                        centrifuge.ClassifyCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Classify every read in the input FASTA/FASTQ files against an index built
with 'centrifuge build'.

Single-end reads are passed with -U, paired-end mates with -1 and -2. Each
read gets one TSV line per reported taxon, or a single zero line when
nothing in the index matched it.`,
}

// set flags
func init() {
	classifyCmd.Flags().StringP("index", "x", "", "index file <.cfi>")
	classifyCmd.Flags().StringP("unpaired", "U", "", "comma separated single-end read files")
	classifyCmd.Flags().StringP("mate1", "1", "", "comma separated #1 mate files")
	classifyCmd.Flags().StringP("mate2", "2", "", "comma separated #2 mate files")
	classifyCmd.Flags().StringP("out", "o", "", "output TSV file (default stdout)")
	classifyCmd.Flags().String("summary", "", "write a JSON run summary to this file")
	classifyCmd.Flags().IntP("threads", "p", runtime.NumCPU(), "number of classification workers")
	classifyCmd.Flags().Int("min-hit-len", 22, "minimum partial-match length that counts as a hit")
	classifyCmd.Flags().IntP("max-hits", "k", 5, "per-read cap on resolved genome positions")
	classifyCmd.Flags().String("emit", "all", "which taxa to report per read: all or best")

	viper.BindPFlag("threads", classifyCmd.Flags().Lookup("threads"))
	viper.BindPFlag("classify.min-hit-len", classifyCmd.Flags().Lookup("min-hit-len"))
	viper.BindPFlag("classify.max-hits", classifyCmd.Flags().Lookup("max-hits"))
	viper.BindPFlag("classify.emit", classifyCmd.Flags().Lookup("emit"))

	rootCmd.AddCommand(classifyCmd)
}
