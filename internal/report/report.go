// Package report collects per-read classification results and writes
// them as TSV, with an optional JSON run summary.
package report

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/SooyeongHwang/centrifuge/internal/classify"
)

// Batch collects the results of one read. It is the sink handed to a
// classifier and the unit sent from a worker to the writer, so a
// read's lines are never interleaved with another's.
type Batch struct {
	// Name is the read id
	Name string

	// Length is the read length in bases
	Length int

	// Num is the read ordinal in input order
	Num uint64

	// Results are the classifications reported for this read
	Results []classify.Result
}

// Reset prepares the batch for the next read, keeping the result
// slice's capacity.
func (b *Batch) Reset(name string, length int, num uint64) {
	b.Name = name
	b.Length = length
	b.Num = num
	b.Results = b.Results[:0]
}

// Report implements the classifier's sink contract.
func (b *Batch) Report(mate int, res classify.Result) {
	b.Results = append(b.Results, res)
}

// secondBest is the highest score in the batch other than one
// occurrence of the best.
func (b *Batch) secondBest() uint64 {
	var best, second uint64
	for _, res := range b.Results {
		if res.Score > best {
			second = best
			best = res.Score
		} else if res.Score > second {
			second = res.Score
		}
	}
	return second
}

// TSVWriter streams classification batches as tab-separated lines.
type TSVWriter struct {
	w *bufio.Writer
}

// NewTSVWriter wraps w and writes the header line.
func NewTSVWriter(w io.Writer) (*TSVWriter, error) {
	t := &TSVWriter{w: bufio.NewWriter(w)}
	_, err := t.w.WriteString("readID\tqueryLength\tspeciesID\tgenusID\tscore\tsecondBestScore\tnumMatches\n")
	if err != nil {
		return nil, errors.Wrap(err, "report: write header")
	}
	return t, nil
}

// WriteBatch writes one line per result, or a single all-zero line for
// an unclassified read.
func (t *TSVWriter) WriteBatch(b *Batch) error {
	if len(b.Results) == 0 {
		t.writeLine(b, classify.Result{}, 0)
		return errors.Wrap(t.w.Flush(), "report: write")
	}

	second := b.secondBest()
	for _, res := range b.Results {
		t.writeLine(b, res, second)
	}
	return errors.Wrap(t.w.Flush(), "report: write")
}

func (t *TSVWriter) writeLine(b *Batch, res classify.Result, second uint64) {
	t.w.WriteString(b.Name)
	t.w.WriteByte('\t')
	t.w.WriteString(strconv.Itoa(b.Length))
	t.w.WriteByte('\t')
	t.w.WriteString(strconv.FormatUint(uint64(res.Species), 10))
	t.w.WriteByte('\t')
	t.w.WriteString(strconv.FormatUint(uint64(res.Genus), 10))
	t.w.WriteByte('\t')
	t.w.WriteString(strconv.FormatUint(res.Score, 10))
	t.w.WriteByte('\t')
	t.w.WriteString(strconv.FormatUint(second, 10))
	t.w.WriteByte('\t')
	t.w.WriteString(strconv.Itoa(len(b.Results)))
	t.w.WriteByte('\n')
}

// Flush drains buffered output.
func (t *TSVWriter) Flush() error {
	return errors.Wrap(t.w.Flush(), "report: flush")
}

// Summary is the end-of-run accounting written as JSON.
type Summary struct {
	Reads        uint64 `json:"reads"`
	Classified   uint64 `json:"classified"`
	Unclassified uint64 `json:"unclassified"`
	Results      uint64 `json:"results"`
	SeedRanges   uint64 `json:"seedRanges"`
	Coordinates  uint64 `json:"coordinates"`
	LocateSteps  uint64 `json:"locateSteps"`
}

// NewSummary folds classification metrics into a summary.
func NewSummary(m *classify.Metrics) Summary {
	return Summary{
		Reads:        m.Reads,
		Classified:   m.Classified,
		Unclassified: m.Reads - m.Classified,
		Results:      m.Results,
		SeedRanges:   m.Search.RangeTotal,
		Coordinates:  m.Search.Coords,
		LocateSteps:  m.Search.Walks,
	}
}

// WriteJSON writes the summary, indented.
func (s Summary) WriteJSON(w io.Writer) error {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "report: summary")
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return errors.Wrap(err, "report: summary")
}
