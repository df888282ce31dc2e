// Package reads streams sequencing reads from FASTA or FASTQ input.
package reads

// Read is one sequencing read.
type Read struct {
	// Name is the record header without the leading '>' or '@'
	Name string

	// Seq is the uppercased sequence
	Seq []byte

	// Qual is the quality line for FASTQ input, nil for FASTA
	Qual []byte

	// Num is the 0-based ordinal of the read within its input
	Num uint64
}

// comp maps a base to its complement. Unknown bases complement to 'N'.
var comp [256]byte

// upper folds lowercase bases to uppercase and leaves the rest alone.
var upper [256]byte

func init() {
	for i := range comp {
		comp[i] = 'N'
		upper[i] = byte(i)
	}
	for _, p := range [][2]byte{{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}} {
		comp[p[0]] = p[1]
		comp[p[0]+'a'-'A'] = p[1]
	}
	for b := byte('a'); b <= 'z'; b++ {
		upper[b] = b - 'a' + 'A'
	}
}

// RevComp returns the reverse complement of seq in a new slice.
func RevComp(seq []byte) []byte {
	rc := make([]byte, len(seq))
	for i, b := range seq {
		rc[len(seq)-1-i] = comp[b]
	}
	return rc
}

func toUpper(seq []byte) []byte {
	for i, b := range seq {
		seq[i] = upper[b]
	}
	return seq
}
