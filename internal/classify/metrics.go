package classify

import (
	"github.com/SooyeongHwang/centrifuge/internal/seed"
)

// Metrics accumulates classification counters. Each worker keeps its
// own instance; Merge combines them when a run finishes.
type Metrics struct {
	// Search collects index-side range and walk telemetry
	Search seed.Metrics

	// Reads counts reads (or pairs) classified
	Reads uint64

	// Classified counts reads that emitted at least one result
	Classified uint64

	// Results counts emitted results
	Results uint64
}

// Merge folds other into m.
func (m *Metrics) Merge(other *Metrics) {
	m.Search.Merge(&other.Search)
	m.Reads += other.Reads
	m.Classified += other.Classified
	m.Results += other.Results
}
