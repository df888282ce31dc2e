package cmd

import (
	"github.com/SooyeongHwang/centrifuge/internal/centrifuge"
	"github.com/spf13/cobra"
)

// inspectCmd is for printing a summary of an index without classifying
var inspectCmd = &cobra.Command{
	Use:                        "inspect [index]",
	Short:                      "Print a summary of an index",
	Run:                        centrifuge.InspectCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Print an index's totals as JSON followed by a table with each reference's
name, taxonomy ids and length.`,
}

// set flags
func init() {
	inspectCmd.Flags().StringP("index", "x", "", "index file <.cfi>")
	inspectCmd.Flags().StringP("out", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(inspectCmd)
}
