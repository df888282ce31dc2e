package centrifuge

import (
	"os"
	"time"

	"github.com/SooyeongHwang/centrifuge/config"
	"github.com/SooyeongHwang/centrifuge/internal/index"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// BuildCmd takes a cobra command (with its flags) and builds an index
// from its reference FASTAs.
func BuildCmd(cmd *cobra.Command, args []string) {
	fs := parseCmdFlags(cmd, args)
	if len(fs.refs) == 0 {
		cmd.Help()
		stderr.Fatalln("\nno reference FASTA passed.")
	}
	if fs.out == "" {
		cmd.Help()
		stderr.Fatalln("\nno output index path passed.")
	}

	Build(fs, config.New())
}

// Build reads the reference FASTAs, builds an FM-index over them and
// writes it to the output path.
func Build(fs *Flags, conf *config.Config) {
	start := time.Now()

	x, err := index.Build(fs.refs, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err := x.Write(fs.out); err != nil {
		stderr.Fatalln(err)
	}

	info, err := os.Stat(fs.out)
	if err != nil {
		stderr.Fatalln(err)
	}
	stderr.Printf("wrote %s (%s) in %s", fs.out, humanize.Bytes(uint64(info.Size())), time.Since(start).Round(time.Millisecond))
}
