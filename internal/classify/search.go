package classify

import (
	"github.com/SooyeongHwang/centrifuge/internal/seed"
)

// searchStrands runs the seed search over both strands of one mate in
// logical lock-step until both are done. A strand whose scan cursor
// falls more than maxDiff behind the other's is abandoned.
func (c *Classifier) searchStrands(fwd, rc []byte, hits *[2]seed.Hits) {
	rdlen := len(fwd)

	maxDiff := c.maxLag
	if maxDiff <= 0 {
		maxDiff = rdlen / 2
		if maxDiff < 2*c.minHitLen {
			maxDiff = 2 * c.minHitLen
		}
	}

	seqs := [2][]byte{fwd, rc}
	var done [2]bool
	var cur [2]int

	for !done[0] || !done[1] {
		for fwi := 0; fwi < 2; fwi++ {
			if done[fwi] {
				continue
			}
			h := &hits[fwi]

			c.idx.Step(seqs[fwi], h)
			if h.Done {
				done[fwi] = true
				cur[fwi] = rdlen
				continue
			}

			// lag comparison uses the cursor before any adjustment
			cur[fwi] = h.Cur

			if last, ok := h.Last(); ok && last.Len > c.step {
				if last.Len < c.minHitLen {
					// near miss, back up and rescan from an earlier offset
					h.Cur -= c.step
				} else {
					h.Cur++
				}
			}

			if h.Cur+c.minHitLen >= rdlen {
				// no qualifying seed fits in what remains
				h.Done = true
				done[fwi] = true
			}
		}

		if cur[0] > cur[1]+maxDiff {
			hits[1].Done = true
			done[1] = true
		} else if cur[1] > cur[0]+maxDiff {
			hits[0].Done = true
			done[0] = true
		}
	}
}

// selectStrand picks the strand with the greater average qualifying
// hit length, ties resolving to the reverse strand. totalLen receives
// each strand's summed qualifying hit length for the termination
// heuristic.
func selectStrand(hits *[2]seed.Hits, minHitLen int, totalLen *[2]int) int {
	var avg [2]int
	for fwi := 0; fwi < 2; fwi++ {
		n := 0
		for _, ph := range hits[fwi].All {
			if ph.Len < minHitLen {
				continue
			}
			totalLen[fwi] += ph.Len
			n++
		}
		if n > 0 {
			avg[fwi] = totalLen[fwi] / n
		}
	}

	if avg[0] > avg[1] {
		return 0
	}
	return 1
}
