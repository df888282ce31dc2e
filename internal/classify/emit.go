package classify

import (
	"github.com/pkg/errors"
)

// EmitStrategy selects how per-read results are reported.
type EmitStrategy int

const (
	// EmitAll reports every genus and species pair (the default)
	EmitAll EmitStrategy = iota

	// EmitBest reports only the genera tied for the highest weighted
	// count and, within each, its single best species
	EmitBest
)

// ParseStrategy maps a configuration string onto an EmitStrategy.
func ParseStrategy(s string) (EmitStrategy, error) {
	switch s {
	case "", "all":
		return EmitAll, nil
	case "best":
		return EmitBest, nil
	}
	return EmitAll, errors.Errorf("unknown emit strategy %q", s)
}

// emit reports the genus map through the active strategy, returning
// the number of results reported.
func (c *Classifier) emit() int {
	if c.strategy == EmitBest {
		return c.emitBest()
	}
	return c.emitAll()
}

// emitAll reports one result for every species under every genus.
func (c *Classifier) emitAll() int {
	n := 0
	for gi := range c.genera {
		g := &c.genera[gi]
		for si := range g.Species {
			sp := &g.Species[si]
			c.sink.Report(0, Result{
				Species: sp.ID,
				Genus:   g.ID,
				Score:   g.WeightedCount + sp.WeightedCount,
			})
			n++
		}
	}
	return n
}

// emitBest reports the single best genus, keeping ties, and within
// each tied genus only its single best species.
func (c *Classifier) emitBest() int {
	c.ties = c.ties[:0]
	var top uint64
	for gi := range c.genera {
		wc := c.genera[gi].WeightedCount
		if wc > top {
			top = wc
			c.ties = append(c.ties[:0], gi)
		} else if wc == top {
			c.ties = append(c.ties, gi)
		}
	}

	n := 0
	for _, gi := range c.ties {
		g := &c.genera[gi]

		bi := -1
		var bwc uint64
		for si := range g.Species {
			if g.Species[si].WeightedCount > bwc {
				bwc = g.Species[si].WeightedCount
				bi = si
			}
		}
		if bi < 0 {
			continue
		}

		sp := &g.Species[bi]
		c.sink.Report(0, Result{
			Species: sp.ID,
			Genus:   g.ID,
			Score:   g.WeightedCount + sp.WeightedCount,
		})
		n++
	}
	return n
}
