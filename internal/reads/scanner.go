package reads

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Scanner streams FASTA or FASTQ records from one input. The format is
// detected from the first record's leading byte: '>' for FASTA, '@' for
// FASTQ. FASTA sequences may span multiple lines.
type Scanner struct {
	sc      *bufio.Scanner
	read    Read
	err     error
	num     uint64
	fastq   bool
	started bool

	// header holds a record header line consumed while scanning the
	// previous record, or during format detection
	header string

	closers []io.Closer
}

// NewScanner wraps a reader of FASTA or FASTQ records.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	return &Scanner{sc: sc}
}

// Open opens a FASTA or FASTQ file, gunzipping if the path ends in .gz.
func Open(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open reads file %s", path)
	}

	var r io.Reader = f
	closers := []io.Closer{f}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "failed to gunzip reads file %s", path)
		}
		r = gz
		closers = []io.Closer{gz, f}
	}

	s := NewScanner(r)
	s.closers = closers
	return s, nil
}

// Close closes the underlying file handles, if Open created any.
func (s *Scanner) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Read returns the record read by the last successful Scan.
func (s *Scanner) Read() Read {
	return s.read
}

// Err returns the first malformed-input or IO error hit by Scan.
func (s *Scanner) Err() error {
	return s.err
}

// Scan advances to the next record. It returns false at the end of the
// input or on error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	if !s.started {
		if !s.sc.Scan() {
			s.err = s.sc.Err()
			return false
		}
		line := s.sc.Text()
		switch {
		case strings.HasPrefix(line, "@"):
			s.fastq = true
		case strings.HasPrefix(line, ">"):
			s.fastq = false
		default:
			s.err = errors.Errorf("input is neither FASTA nor FASTQ, first line %q", line)
			return false
		}
		s.header = line
		s.started = true
	}

	if s.fastq {
		return s.scanFastq()
	}
	return s.scanFasta()
}

func (s *Scanner) scanFastq() bool {
	hdr := s.header
	s.header = ""
	if hdr == "" {
		if !s.sc.Scan() {
			s.err = s.sc.Err()
			return false
		}
		hdr = s.sc.Text()
	}
	if !strings.HasPrefix(hdr, "@") {
		s.err = errors.Errorf("malformed FASTQ header %q", hdr)
		return false
	}

	if !s.sc.Scan() {
		s.err = errors.Errorf("truncated FASTQ record %q", hdr)
		return false
	}
	seq := append([]byte(nil), s.sc.Bytes()...)

	if !s.sc.Scan() || !strings.HasPrefix(s.sc.Text(), "+") {
		s.err = errors.Errorf("FASTQ record %q is missing its '+' line", hdr)
		return false
	}

	if !s.sc.Scan() {
		s.err = errors.Errorf("FASTQ record %q is missing its quality line", hdr)
		return false
	}
	qual := append([]byte(nil), s.sc.Bytes()...)
	if len(qual) != len(seq) {
		s.err = errors.Errorf("FASTQ record %q has %d quality values for %d bases", hdr, len(qual), len(seq))
		return false
	}

	s.read = Read{Name: hdr[1:], Seq: toUpper(seq), Qual: qual, Num: s.num}
	s.num++
	return true
}

func (s *Scanner) scanFasta() bool {
	hdr := s.header
	s.header = ""
	if hdr == "" {
		// previous record ended at EOF
		return false
	}
	if !strings.HasPrefix(hdr, ">") {
		s.err = errors.Errorf("malformed FASTA header %q", hdr)
		return false
	}

	var seq []byte
	for s.sc.Scan() {
		line := s.sc.Text()
		if strings.HasPrefix(line, ">") {
			s.header = line
			break
		}
		seq = append(seq, line...)
	}
	if err := s.sc.Err(); err != nil {
		s.err = err
		return false
	}

	s.read = Read{Name: hdr[1:], Seq: toUpper(seq), Num: s.num}
	s.num++
	return true
}

// PairScanner zips two read files for paired-end input. Mate ordinals
// are shared, taken from the first file.
type PairScanner struct {
	s1, s2 *Scanner
	err    error
}

// OpenPair opens the two mate files of a paired-end run.
func OpenPair(path1, path2 string) (*PairScanner, error) {
	s1, err := Open(path1)
	if err != nil {
		return nil, err
	}
	s2, err := Open(path2)
	if err != nil {
		s1.Close()
		return nil, err
	}
	return &PairScanner{s1: s1, s2: s2}, nil
}

// Close closes both mate files.
func (p *PairScanner) Close() error {
	err1 := p.s1.Close()
	err2 := p.s2.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// Scan advances both mates. Files ending at different record counts are
// an error.
func (p *PairScanner) Scan() bool {
	if p.err != nil {
		return false
	}

	ok1 := p.s1.Scan()
	ok2 := p.s2.Scan()
	if ok1 != ok2 {
		p.err = errors.New("paired read files have unequal record counts")
		return false
	}
	if !ok1 {
		p.err = p.s1.Err()
		if p.err == nil {
			p.err = p.s2.Err()
		}
		return false
	}
	return true
}

// Mate1 returns the first mate of the pair read by the last Scan.
func (p *PairScanner) Mate1() Read {
	return p.s1.Read()
}

// Mate2 returns the second mate of the pair read by the last Scan.
func (p *PairScanner) Mate2() Read {
	r := p.s2.Read()
	r.Num = p.s1.Read().Num
	return r
}

// Err returns the first error hit by Scan.
func (p *PairScanner) Err() error {
	return p.err
}
