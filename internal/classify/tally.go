package classify

// weightBase is the length baseline of the quadratic seed weight. It
// also anchors the remaining-signal estimate of the early-termination
// heuristic.
const weightBase = 15

// SpeciesCount tracks one species' accumulated credit under a genus.
type SpeciesCount struct {
	// ID is the species taxonomy id
	ID uint32

	// Count is the number of rounds that credited this species
	Count uint32

	// WeightedCount accumulates the quadratic seed weights
	WeightedCount uint64

	// Round is the last round index that credited this species
	Round int
}

// GenusCount tracks one genus' accumulated credit and the species seen
// under it. Species is unique by id.
type GenusCount struct {
	// ID is the genus taxonomy id
	ID uint32

	// Count is the number of rounds that credited this genus
	Count uint32

	// WeightedCount accumulates the quadratic seed weights
	WeightedCount uint64

	// Round is the last round index that credited this genus
	Round int

	// Species are the species credited under this genus
	Species []SpeciesCount
}

// hitWeight is the quadratic reward for a seed of the given length,
// (L - 15)^2.
func hitWeight(length int) uint64 {
	d := length - weightBase
	return uint64(d * d)
}

// creditGenus credits weight to genusID for the given round, appending
// a new entry on first sight. An entry is credited at most once per
// round no matter how many coordinates of the round map to it. The
// return is the entry's index in genera.
func creditGenus(genera *[]GenusCount, genusID uint32, round int, weight uint64) int {
	for i := range *genera {
		g := &(*genera)[i]
		if g.ID != genusID {
			continue
		}
		if g.Round != round {
			g.Count++
			g.WeightedCount += weight
			g.Round = round
		}
		return i
	}

	*genera = append(*genera, GenusCount{
		ID:            genusID,
		Count:         1,
		WeightedCount: weight,
		Round:         round,
	})
	return len(*genera) - 1
}

// creditSpecies credits weight to speciesID under genus, which must
// already have been credited for this coordinate via creditGenus. The
// returned score is the genus' weighted count when a known species is
// updated, the new weight itself when the species is first seen, and 0
// when the species was already credited this round. A 0 return means
// "no new information", not a zero-weight credit.
func creditSpecies(genus *GenusCount, speciesID uint32, round int, weight uint64) uint64 {
	for i := range genus.Species {
		sp := &genus.Species[i]
		if sp.ID != speciesID {
			continue
		}
		if sp.Round == round {
			return 0
		}
		sp.Count++
		sp.WeightedCount += weight
		sp.Round = round
		return genus.WeightedCount
	}

	genus.Species = append(genus.Species, SpeciesCount{
		ID:            speciesID,
		Count:         1,
		WeightedCount: weight,
		Round:         round,
	})
	return weight
}
