// Package classify assigns sequencing reads to genus and species
// taxonomy ids by folding exact seed matches against a multi-genome
// index into a two-level weighted vote.
package classify

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/SooyeongHwang/centrifuge/config"
	"github.com/SooyeongHwang/centrifuge/internal/reads"
	"github.com/SooyeongHwang/centrifuge/internal/seed"
	"github.com/SooyeongHwang/centrifuge/internal/taxid"
)

// Index is the search side of a reference index: seed extension,
// coordinate resolution, and taxonomy lookup.
type Index interface {
	// Step extends an exact match from h.Cur, appending one partial
	// hit (length 0 when no base matched) and advancing the cursor.
	// It sets h.Done once the strand's scan is complete.
	Step(read []byte, h *seed.Hits)

	// Resolve turns the suffix-array range [top, bot) of a hit of
	// length hitLen into at most max genome coordinates. The unclipped
	// range size is always added to m.RangeTotal. Coordinates whose
	// span crosses a reference boundary are dropped when
	// rejectStraddle is set.
	Resolve(top, bot uint64, hitLen int, fw bool, max int, rejectStraddle bool, m *seed.Metrics) []seed.Coord

	// Tax returns the packed taxonomy id of a reference.
	Tax(ref int) taxid.Packed
}

// Result is one emitted classification for a read.
type Result struct {
	// Species is the species taxonomy id, the primary assignment
	Species uint32

	// Genus is the genus taxonomy id the species falls under
	Genus uint32

	// Score is the genus weighted count plus the species weighted count
	Score uint64
}

// Sink receives the results of the read under classification.
type Sink interface {
	Report(mate int, res Result)
}

// Classifier assigns reads to taxonomy ids. One instance serves one
// worker: scratch state is reused across calls, so instances must not
// be shared concurrently.
type Classifier struct {
	idx     Index
	rng     *rand.Rand
	sink    Sink
	metrics *Metrics

	minHitLen int
	step      int
	maxHits   int
	maxLag    int
	strategy  EmitStrategy

	// per-read scratch, cleared at the start of each call
	hits   [2]seed.Hits
	genera []GenusCount
	ties   []int
}

// New builds a Classifier around an index, a seedable random source
// for unbiased truncation, and the sink results are reported to.
func New(conf *config.Config, idx Index, rng *rand.Rand, sink Sink, m *Metrics) (*Classifier, error) {
	if idx == nil {
		return nil, errors.New("classify: nil index")
	}
	if sink == nil {
		return nil, errors.New("classify: nil sink")
	}

	strategy, err := ParseStrategy(conf.Classify.Emit)
	if err != nil {
		return nil, err
	}
	if conf.Classify.MinHitLen <= weightBase {
		return nil, errors.Errorf("classify: min-hit-len %d must exceed %d for positive seed weights", conf.Classify.MinHitLen, weightBase)
	}
	if conf.Classify.MaxHits < 1 {
		return nil, errors.Errorf("classify: max-hits %d must be at least 1", conf.Classify.MaxHits)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if m == nil {
		m = &Metrics{}
	}

	return &Classifier{
		idx:       idx,
		rng:       rng,
		sink:      sink,
		metrics:   m,
		minHitLen: conf.Classify.MinHitLen,
		step:      conf.Classify.SeedStep,
		maxHits:   conf.Classify.MaxHits,
		maxLag:    conf.Classify.MaxStrandLag,
		strategy:  strategy,
	}, nil
}

// Seed reseeds the classifier's random source. Reseeding from each
// read's ordinal keeps output reproducible across worker counts.
func (c *Classifier) Seed(s int64) {
	c.rng.Seed(s)
}

// Classify classifies one read or read pair (mate2 nil when unpaired)
// and reports zero or more results to the sink. The return is a
// status code, 0 on normal completion.
func (c *Classifier) Classify(mate1, mate2 []byte) int {
	c.genera = c.genera[:0]
	c.metrics.Reads++

	mates := [2][]byte{mate1, mate2}
	nmates := 1
	if mate2 != nil {
		nmates = 2
	}

	// best and second-best species-level scores, tracked across mates
	var best, second uint64

	for mi := 0; mi < nmates; mi++ {
		seq := mates[mi]
		rc := reads.RevComp(seq)

		c.hits[0].Reset()
		c.hits[1].Reset()
		c.searchStrands(seq, rc, &c.hits)

		var totalLen [2]int
		sel := selectStrand(&c.hits, c.minHitLen, &totalLen)
		h := &c.hits[sel]
		fw := sel == 0

		// cheapest-to-resolve, most specific hits first
		sort.Slice(h.All, func(i, j int) bool {
			if h.All[i].Size() != h.All[j].Size() {
				return h.All[i].Size() < h.All[j].Size()
			}
			return h.All[i].Len > h.All[j].Len
		})

		used := 0
		resolved := 0
		for hi := range h.All {
			ph := h.All[hi]
			if ph.Len < c.minHitLen {
				continue
			}

			coords := c.idx.Resolve(ph.Top, ph.Bot, ph.Len, fw, c.maxHits, false, &c.metrics.Search)
			if len(coords) == 0 {
				continue
			}
			used += ph.Len

			if resolved+len(coords) > c.maxHits {
				// shuffle so truncation keeps a uniform sample of the
				// range rather than whichever references sort first
				c.rng.Shuffle(len(coords), func(i, j int) {
					coords[i], coords[j] = coords[j], coords[i]
				})
			}

			weight := hitWeight(ph.Len)
			for k := 0; k < len(coords) && resolved < c.maxHits; k++ {
				id := c.idx.Tax(coords[k].Ref)

				gi := creditGenus(&c.genera, id.Genus(), hi, weight)
				score := creditSpecies(&c.genera[gi], id.Species(), hi, weight)

				// a 0 score carries no new information and must not
				// displace either tracker
				if score > best {
					second = best
					best = score
				} else if score > second {
					second = score
				}
				resolved++
			}

			if resolved >= c.maxHits {
				break
			}

			if mi == nmates-1 {
				// the unscanned remainder cannot overturn the ranking
				d := totalLen[sel] - used - weightBase
				if best > second+uint64(d*d) {
					break
				}
			}
		}
	}

	n := c.emit()
	if n > 0 {
		c.metrics.Classified++
	}
	c.metrics.Results += uint64(n)
	return 0
}
