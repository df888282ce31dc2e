// Package seed holds the seed-match types shared between index search
// and read classification.
package seed

// PartialHit is one exact seed match: the suffix-array range of the
// matched substring, the match's offset into the read, and its length.
// A length of 0 records a search step that could not match any base.
type PartialHit struct {
	// Top is the inclusive start of the suffix-array range
	Top uint64

	// Bot is the exclusive end of the suffix-array range
	Bot uint64

	// Off is the offset of the match within the read
	Off int

	// Len is the number of matched bases
	Len int
}

// Size returns the number of index positions the hit's range covers,
// an estimate of the match's ambiguity.
func (h PartialHit) Size() uint64 {
	return h.Bot - h.Top
}

// Hits collects the partial hits found on one strand of one read.
type Hits struct {
	// All is the ordered list of partial hits found so far
	All []PartialHit

	// Cur is the read offset the next search step starts from
	Cur int

	// Done is set once the strand's scan is complete
	Done bool
}

// Last returns the most recently appended hit.
func (h *Hits) Last() (PartialHit, bool) {
	if len(h.All) == 0 {
		return PartialHit{}, false
	}
	return h.All[len(h.All)-1], true
}

// Reset clears the hit list and cursor for a new read, keeping the
// backing storage.
func (h *Hits) Reset() {
	h.All = h.All[:0]
	h.Cur = 0
	h.Done = false
}

// Coord is one resolved genome position.
type Coord struct {
	// Ref is the reference's index in the store
	Ref int

	// Off is the match's offset within that reference
	Off uint64

	// Fw is true when the read's forward strand produced the match
	Fw bool
}

// Metrics accumulates search-side telemetry across reads.
type Metrics struct {
	// RangeTotal sums the unclipped size of every range handed to the
	// resolver, so budget clipping stays observable
	RangeTotal uint64

	// Coords counts genome coordinates actually resolved
	Coords uint64

	// Walks counts LF-mapping steps taken while resolving coordinates
	Walks uint64
}

// Merge folds other into m.
func (m *Metrics) Merge(other *Metrics) {
	m.RangeTotal += other.RangeTotal
	m.Coords += other.Coords
	m.Walks += other.Walks
}
