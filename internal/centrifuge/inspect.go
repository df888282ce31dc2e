package centrifuge

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/SooyeongHwang/centrifuge/internal/index"
	"github.com/spf13/cobra"
)

// InspectCmd takes a cobra command (with its flags) and prints a summary
// of an index without classifying anything.
func InspectCmd(cmd *cobra.Command, args []string) {
	fs := parseCmdFlags(cmd, args)
	if fs.index == "" && len(args) > 0 {
		fs.index = args[0]
	}
	if fs.index == "" {
		cmd.Help()
		stderr.Fatalln("\nno index passed.")
	}

	x, err := index.Open(fs.index)
	if err != nil {
		stderr.Fatalln(err)
	}

	out := io.Writer(os.Stdout)
	if fs.out != "" {
		f, err := os.Create(fs.out)
		if err != nil {
			stderr.Fatalln(err)
		}
		defer f.Close()
		out = f
	}

	if err := Inspect(x, out); err != nil {
		stderr.Fatalln(err)
	}
}

// Inspect writes the index totals as JSON followed by a per-reference
// table with each reference's name, taxonomy ids and length.
func Inspect(x *index.FM, w io.Writer) error {
	stats, err := json.MarshalIndent(x.Stats(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n\n", stats)

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "reference\tspecies\tgenus\tlength\t\n")
	for _, r := range x.Store.Refs {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t\n", r.Name, r.Tax.Species(), r.Tax.Genus(), r.Len)
	}
	return tw.Flush()
}
