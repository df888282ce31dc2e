package index

import (
	"sort"

	"github.com/SooyeongHwang/centrifuge/internal/taxid"
)

// base2bit packs a reference base into two bits. Degenerate bases and
// anything else map to A, the searchable side treats them as
// unmatchable instead.
var base2bit [256]uint8

var baseKnown [256]bool

func init() {
	for _, p := range []struct {
		b byte
		c uint8
	}{
		{'A', 0}, {'C', 1}, {'G', 2}, {'T', 3},
		{'a', 0}, {'c', 1}, {'g', 2}, {'t', 3},
	} {
		base2bit[p.b] = p.c
		baseKnown[p.b] = true
	}
}

var bit2base = [4]byte{'A', 'C', 'G', 'T'}

// Ref is one reference sequence in a Store.
type Ref struct {
	// Name is the FASTA record id
	Name string

	// Tax is the packed species and genus taxonomy id
	Tax taxid.Packed

	// Off is the start of this reference in the concatenated text
	Off int

	// Len is the reference length in bases
	Len int
}

// Store holds the reference sequences of an index as one concatenated
// two-bit packed text, four bases per byte with the first base in the
// high bits. References are laid out back to back with no separators,
// so a match can straddle two of them.
type Store struct {
	Refs   []Ref
	Packed []byte
	NBases int

	// Masked counts input bases outside ACGT that were stored as A
	Masked int
}

// Append adds one reference sequence to the store.
func (s *Store) Append(name string, tax taxid.Packed, seq []byte) {
	s.Refs = append(s.Refs, Ref{
		Name: name,
		Tax:  tax,
		Off:  s.NBases,
		Len:  len(seq),
	})
	for _, b := range seq {
		if !baseKnown[b] {
			s.Masked++
		}
		s.appendBase(base2bit[b])
	}
}

func (s *Store) appendBase(code uint8) {
	shift := uint(3-s.NBases&3) * 2
	if s.NBases&3 == 0 {
		s.Packed = append(s.Packed, code<<shift)
	} else {
		s.Packed[len(s.Packed)-1] |= code << shift
	}
	s.NBases++
}

// Base returns the two-bit code of the base at offset i of the
// concatenated text.
func (s *Store) Base(i int) uint8 {
	return s.Packed[i>>2] >> (uint(3-i&3) * 2) & 3
}

// Seq decodes the bases of reference r back into ACGT text.
func (s *Store) Seq(r int) []byte {
	ref := s.Refs[r]
	out := make([]byte, ref.Len)
	for i := 0; i < ref.Len; i++ {
		out[i] = bit2base[s.Base(ref.Off+i)]
	}
	return out
}

// Locate maps an offset of the concatenated text to the reference
// containing it and the offset within that reference.
func (s *Store) Locate(off int) (ref int, rel uint64, ok bool) {
	if off < 0 || off >= s.NBases {
		return 0, 0, false
	}
	i := sort.Search(len(s.Refs), func(i int) bool {
		return s.Refs[i].Off > off
	}) - 1
	return i, uint64(off - s.Refs[i].Off), true
}

// Straddles reports whether the span [off, off+length) crosses out of
// the reference containing off.
func (s *Store) Straddles(off, length int) bool {
	i := sort.Search(len(s.Refs), func(i int) bool {
		return s.Refs[i].Off > off
	}) - 1
	return off+length > s.Refs[i].Off+s.Refs[i].Len
}

// reverseText returns the reversed concatenated text recoded to the
// search alphabet, 1 through 4 for A through T, with the 0 sentinel
// appended.
func (s *Store) reverseText() []byte {
	t := make([]byte, s.NBases+1)
	for i := 0; i < s.NBases; i++ {
		t[i] = s.Base(s.NBases-1-i) + 1
	}
	t[s.NBases] = 0
	return t
}
