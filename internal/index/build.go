package index

import (
	"compress/gzip"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/SooyeongHwang/centrifuge/config"
	"github.com/SooyeongHwang/centrifuge/internal/taxid"
)

// Build reads every FASTA file in paths into a store and indexes it.
// A record's taxonomy id is parsed from the leading token of its
// header; records without one are kept under the unknown id so their
// matches still consume budget.
func Build(paths []string, conf *config.Config) (*FM, error) {
	store := &Store{}
	start := time.Now()

	for _, path := range paths {
		if err := readFasta(path, store); err != nil {
			return nil, err
		}
	}
	if store.NBases == 0 {
		return nil, errors.Errorf("index: no sequence data in %s", strings.Join(paths, ", "))
	}

	log.Printf("read %d references, %s bases in %v",
		len(store.Refs), humanize.Comma(int64(store.NBases)), time.Since(start).Round(time.Millisecond))
	if store.Masked > 0 {
		log.Printf("masked %s non-ACGT bases to A", humanize.Comma(int64(store.Masked)))
	}

	start = time.Now()
	x := New(store, conf.Index)
	log.Printf("indexed %s rows in %v",
		humanize.Comma(int64(x.N)), time.Since(start).Round(time.Millisecond))
	return x, nil
}

func readFasta(path string, store *Store) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "index: open %s", path)
	}
	defer f.Close()

	var in io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return errors.Wrapf(err, "index: open %s", path)
		}
		defer gz.Close()
		in = gz
	}

	r := fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA))
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "index: read %s", path)
		}

		l := s.(*linear.Seq)
		name := l.Name()
		if d := l.Description(); d != "" {
			// the reader splits the header at the first space
			name += " " + d
		}
		tax, err := taxid.Parse(name)
		if err != nil {
			log.Printf("no taxonomy id in %q, keeping as unknown", name)
			tax = taxid.Unknown
		}

		bases := make([]byte, len(l.Seq))
		for i, v := range l.Seq {
			bases[i] = byte(v)
		}
		store.Append(name, tax, bases)
	}
	return nil
}
