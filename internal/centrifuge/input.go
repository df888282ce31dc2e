// Package centrifuge ties the index, classify and report packages to
// the command line. Each cobra command's Run func lives here, next to
// the code it drives.
package centrifuge

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra Flags like "refs", "out", "index", etc that are used by multiple commands.
type Flags struct {
	// reference FASTA paths the build command indexes
	refs []string

	// single-end read files for classify
	unpaired []string

	// paired-end read files for classify, zipped positionally
	mate1 []string
	mate2 []string

	// the name of the file to write the output to, "" for stdout
	out string

	// the path of the index file to write or query
	index string

	// the path the classify run summary JSON is written to, "" for none
	summary string
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(refs, unpaired, mate1, mate2 []string, out, index, summary string) *Flags {
	return &Flags{
		refs:     refs,
		unpaired: unpaired,
		mate1:    mate1,
		mate2:    mate2,
		out:      out,
		index:    index,
		summary:  summary,
	}
}

// parseCmdFlags gathers the input paths, output path and index path from
// a cobra cmd object. Flags a command does not define parse as empty.
func parseCmdFlags(cmd *cobra.Command, args []string) *Flags {
	fs := &Flags{}

	refs, _ := cmd.Flags().GetString("refs")
	fs.refs = splitPaths(refs)
	if len(fs.refs) == 0 && cmd.Name() == "build" {
		// positional reference FASTAs are accepted too
		fs.refs = args
	}

	unpaired, _ := cmd.Flags().GetString("unpaired")
	fs.unpaired = splitPaths(unpaired)

	mate1, _ := cmd.Flags().GetString("mate1")
	fs.mate1 = splitPaths(mate1)

	mate2, _ := cmd.Flags().GetString("mate2")
	fs.mate2 = splitPaths(mate2)

	fs.out, _ = cmd.Flags().GetString("out")
	fs.index, _ = cmd.Flags().GetString("index")
	fs.summary, _ = cmd.Flags().GetString("summary")

	return fs
}

// splitPaths splits a comma separated flag value into a list of paths.
func splitPaths(s string) (paths []string) {
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return
}
