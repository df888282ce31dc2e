package centrifuge

import (
	"io"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/SooyeongHwang/centrifuge/config"
	"github.com/SooyeongHwang/centrifuge/internal/classify"
	"github.com/SooyeongHwang/centrifuge/internal/index"
	"github.com/SooyeongHwang/centrifuge/internal/reads"
	"github.com/SooyeongHwang/centrifuge/internal/report"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// ClassifyCmd takes a cobra command (with its flags) and classifies
// every read in its input files against the index.
func ClassifyCmd(cmd *cobra.Command, args []string) {
	fs := parseCmdFlags(cmd, args)
	if fs.index == "" {
		cmd.Help()
		stderr.Fatalln("\nno index passed.")
	}
	if len(fs.unpaired) == 0 && len(fs.mate1) == 0 {
		cmd.Help()
		stderr.Fatalln("\nno read files passed.")
	}
	if len(fs.mate1) != len(fs.mate2) {
		cmd.Help()
		stderr.Fatalln("\n-1 and -2 need the same number of files.")
	}

	Classify(fs, config.New())
}

// Classify loads the index, runs the worker pipeline over every input
// file and writes one TSV line per classification result.
func Classify(fs *Flags, conf *config.Config) {
	start := time.Now()

	stderr.Printf("loading %s", fs.index)
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

	tsv, err := report.NewTSVWriter(out)
	if err != nil {
		stderr.Fatalln(err)
	}

	stderr.Println("counting reads")
	total := countReads(fs)

	m, err := run(x, fs, conf, tsv, total)
	if err != nil {
		stderr.Fatalln(err)
	}

	if fs.summary != "" {
		f, err := os.Create(fs.summary)
		if err != nil {
			stderr.Fatalln(err)
		}
		defer f.Close()
		if err := report.NewSummary(m).WriteJSON(f); err != nil {
			stderr.Fatalln(err)
		}
	}

	stderr.Printf("classified %s of %s reads in %s",
		humanize.Comma(int64(m.Classified)),
		humanize.Comma(int64(m.Reads)),
		time.Since(start).Round(time.Millisecond))
}

// pair is one read, or read pair, on its way to a classification worker.
type pair struct {
	r1, r2 reads.Read
	paired bool

	// num is the read's ordinal across all input files. It seeds the
	// worker's rand source and orders the written output
	num uint64
}

// batchSink points a classifier's report stream at the batch of the read
// it is currently classifying.
type batchSink struct {
	b *report.Batch
}

func (s *batchSink) Report(mate int, res classify.Result) {
	s.b.Report(mate, res)
}

// run fans reads out to conf.Threads workers, each owning one classifier,
// and funnels per-read result batches back through a single writer. The
// writer reorders batches by read ordinal and each worker re-seeds its
// rand source from the same ordinal, so a run's output is byte-identical
// for any worker count.
func run(x *index.FM, fs *Flags, conf *config.Config, tsv *report.TSVWriter, total int64) (*classify.Metrics, error) {
	jobs := make(chan pair, conf.Threads*4)
	results := make(chan *report.Batch, conf.Threads*4)

	var bar *pb.ProgressBar
	if total > 0 {
		bar = pb.Full.Start64(total)
		bar.Set(pb.Bytes, false)
		bar.SetWriter(os.Stderr)
	}

	var writeErr error
	var writerWg sync.WaitGroup
	writerWg.Add(1)
	go func() {
		defer writerWg.Done()
		pending := make(map[uint64]*report.Batch)
		next := uint64(0)
		for b := range results {
			pending[b.Num] = b
			for {
				nb, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++

				if err := tsv.WriteBatch(nb); err != nil && writeErr == nil {
					writeErr = err
				}
				if bar != nil {
					bar.Increment()
				}
			}
		}
	}()

	var metrics []*classify.Metrics
	var workerWg sync.WaitGroup
	for i := 0; i < conf.Threads; i++ {
		m := &classify.Metrics{}
		sink := &batchSink{}
		c, err := classify.New(conf, x, rand.New(rand.NewSource(1)), sink, m)
		if err != nil {
			close(jobs)
			close(results)
			if bar != nil {
				bar.Finish()
			}
			return nil, err
		}
		metrics = append(metrics, m)

		workerWg.Add(1)
		go func() {
			defer workerWg.Done()
			for p := range jobs {
				b := &report.Batch{}
				length := len(p.r1.Seq)
				if p.paired {
					length += len(p.r2.Seq)
				}
				b.Reset(p.r1.Name, length, p.num)

				sink.b = b
				c.Seed(int64(p.num))
				if p.paired {
					c.Classify(p.r1.Seq, p.r2.Seq)
				} else {
					c.Classify(p.r1.Seq, nil)
				}
				results <- b
			}
		}()
	}

	var readErr error
	go func() {
		defer close(jobs)

		num := uint64(0)
		for _, path := range fs.unpaired {
			sc, err := reads.Open(path)
			if err != nil {
				readErr = err
				return
			}
			for sc.Scan() {
				jobs <- pair{r1: sc.Read(), num: num}
				num++
			}
			err = sc.Err()
			sc.Close()
			if err != nil {
				readErr = err
				return
			}
		}

		for i := range fs.mate1 {
			ps, err := reads.OpenPair(fs.mate1[i], fs.mate2[i])
			if err != nil {
				readErr = err
				return
			}
			for ps.Scan() {
				jobs <- pair{r1: ps.Mate1(), r2: ps.Mate2(), paired: true, num: num}
				num++
			}
			err = ps.Err()
			ps.Close()
			if err != nil {
				readErr = err
				return
			}
		}
	}()

	workerWg.Wait()
	close(results)
	writerWg.Wait()
	if bar != nil {
		bar.Finish()
	}

	if readErr != nil {
		return nil, readErr
	}
	if writeErr != nil {
		return nil, writeErr
	}

	m := &classify.Metrics{}
	for _, wm := range metrics {
		m.Merge(wm)
	}
	return m, nil
}

// countReads makes a quick first pass over the input files so the
// progress bar has a total. A zero return leaves the bar off.
func countReads(fs *Flags) int64 {
	var n int64
	for _, path := range fs.unpaired {
		c, err := countFile(path)
		if err != nil {
			return 0
		}
		n += c
	}
	for _, path := range fs.mate1 {
		c, err := countFile(path)
		if err != nil {
			return 0
		}
		n += c
	}
	return n
}

func countFile(path string) (int64, error) {
	sc, err := reads.Open(path)
	if err != nil {
		return 0, err
	}
	defer sc.Close()

	var n int64
	for sc.Scan() {
		n++
	}
	return n, sc.Err()
}
