// Package index builds, stores and queries an FM-index over a set of
// reference sequences. The index is built over the reversed
// concatenated text, so extending a match rightward through a read is
// a backward search feeding the read's bases in forward order.
package index

import (
	"github.com/SooyeongHwang/centrifuge/config"
	"github.com/SooyeongHwang/centrifuge/internal/seed"
	"github.com/SooyeongHwang/centrifuge/internal/taxid"
)

// searchCode recodes a read base to the search alphabet. 0 is not
// searchable: it stops extension at degenerate bases rather than
// matching them.
var searchCode [256]byte

func init() {
	for _, p := range []struct {
		b byte
		c byte
	}{
		{'A', 1}, {'C', 2}, {'G', 3}, {'T', 4},
		{'a', 1}, {'c', 2}, {'g', 3}, {'t', 4},
	} {
		searchCode[p.b] = p.c
	}
}

// FM is a sampled FM-index over the reversed reference text.
type FM struct {
	// Store holds the references and the forward packed text
	Store *Store

	// BWT is the Burrows-Wheeler transform of the reversed text, one
	// search code per row
	BWT []byte

	// C counts, per search code, the text characters that sort before
	// it; C[5] guards with the text length
	C [6]uint64

	// Occ checkpoints running code counts every CheckpointRate rows
	Occ [5][]uint32

	// Samples maps a row to its suffix offset for rows whose offset is
	// a multiple of SampleRate
	Samples map[uint32]uint32

	// N is the text length including the sentinel
	N int

	SampleRate     int
	CheckpointRate int
}

// New builds the index for a populated store.
func New(store *Store, conf config.IndexConfig) *FM {
	x := &FM{
		Store:          store,
		SampleRate:     conf.SampleRate,
		CheckpointRate: conf.CheckpointRate,
	}
	if x.SampleRate < 1 {
		x.SampleRate = 32
	}
	if x.CheckpointRate < 1 {
		x.CheckpointRate = 128
	}

	text := store.reverseText()
	sa := suffixArray(text)
	n := len(text)
	x.N = n

	x.BWT = make([]byte, n)
	x.Samples = make(map[uint32]uint32, n/x.SampleRate+1)
	for i, s := range sa {
		if s == 0 {
			x.BWT[i] = text[n-1]
		} else {
			x.BWT[i] = text[s-1]
		}
		if int(s)%x.SampleRate == 0 {
			x.Samples[uint32(i)] = uint32(s)
		}
	}

	var counts [5]uint64
	for _, c := range text {
		counts[c]++
	}
	for c := 1; c < 6; c++ {
		x.C[c] = x.C[c-1] + counts[c-1]
	}

	cp := x.CheckpointRate
	ncp := n/cp + 1
	var run [5]uint32
	for c := 0; c < 5; c++ {
		x.Occ[c] = make([]uint32, ncp)
	}
	for i := 0; i < n; i++ {
		if i%cp == 0 {
			for c := 0; c < 5; c++ {
				x.Occ[c][i/cp] = run[c]
			}
		}
		run[x.BWT[i]]++
	}
	if n%cp == 0 {
		for c := 0; c < 5; c++ {
			x.Occ[c][n/cp] = run[c]
		}
	}
	return x
}

// rank counts occurrences of code c in BWT[0:i).
func (x *FM) rank(c byte, i uint32) uint32 {
	q := int(i) / x.CheckpointRate
	r := x.Occ[c][q]
	for j := q * x.CheckpointRate; j < int(i); j++ {
		if x.BWT[j] == c {
			r++
		}
	}
	return r
}

// ext narrows the row range [top, bot) by one more character.
func (x *FM) ext(top, bot uint64, c byte) (uint64, uint64) {
	return x.C[c] + uint64(x.rank(c, uint32(top))),
		x.C[c] + uint64(x.rank(c, uint32(bot)))
}

// locate walks a row back to a sampled one and returns the row's
// suffix offset in the reversed text along with the number of steps
// taken.
func (x *FM) locate(row uint32) (off uint32, steps int) {
	for {
		if s, ok := x.Samples[row]; ok {
			return s + uint32(steps), steps
		}
		c := x.BWT[row]
		row = uint32(x.C[c]) + x.rank(c, row)
		steps++
	}
}

// Step extends an exact match rightward from h.Cur, appending one
// partial hit and advancing the cursor past it. A step that matches
// nothing appends a length 0 hit and advances by one. Done is set
// once the cursor reaches the end of the read.
func (x *FM) Step(read []byte, h *seed.Hits) {
	off := h.Cur
	top, bot := uint64(0), uint64(x.N)
	length := 0
	for i := off; i < len(read); i++ {
		c := searchCode[read[i]]
		if c == 0 {
			break
		}
		t, b := x.ext(top, bot, c)
		if t >= b {
			break
		}
		top, bot = t, b
		length++
	}

	if length > 0 {
		h.All = append(h.All, seed.PartialHit{Top: top, Bot: bot, Off: off, Len: length})
		h.Cur = off + length
	} else {
		h.All = append(h.All, seed.PartialHit{Off: off})
		h.Cur = off + 1
	}
	if h.Cur >= len(read) {
		h.Done = true
	}
}

// Resolve walks at most max rows of [top, bot) back to genome
// coordinates. The unclipped range size always lands in m.RangeTotal,
// even when resolution is capped. Matches crossing a reference
// boundary are attributed to the reference containing their start, or
// dropped when rejectStraddle is set.
func (x *FM) Resolve(top, bot uint64, hitLen int, fw bool, max int, rejectStraddle bool, m *seed.Metrics) []seed.Coord {
	size := bot - top
	m.RangeTotal += size

	n := int(size)
	if max < n {
		n = max
	}
	coords := make([]seed.Coord, 0, n)
	for i := 0; i < n; i++ {
		revOff, steps := x.locate(uint32(top) + uint32(i))
		m.Walks += uint64(steps)
		m.Coords++

		start := x.Store.NBases - int(revOff) - hitLen
		ref, rel, ok := x.Store.Locate(start)
		if !ok {
			continue
		}
		if rejectStraddle && x.Store.Straddles(start, hitLen) {
			continue
		}
		coords = append(coords, seed.Coord{Ref: ref, Off: rel, Fw: fw})
	}
	return coords
}

// Tax returns the packed taxonomy id of a reference.
func (x *FM) Tax(ref int) taxid.Packed {
	return x.Store.Refs[ref].Tax
}

// Stats summarizes a loaded index.
type Stats struct {
	References  int `json:"references"`
	Bases       int `json:"bases"`
	Rows        int `json:"rows"`
	Samples     int `json:"samples"`
	Checkpoints int `json:"checkpoints"`
}

func (x *FM) Stats() Stats {
	return Stats{
		References:  len(x.Store.Refs),
		Bases:       x.Store.NBases,
		Rows:        x.N,
		Samples:     len(x.Samples),
		Checkpoints: len(x.Occ[0]),
	}
}
