package classify

import (
	"reflect"
	"testing"
)

func Test_hitWeight(t *testing.T) {
	type args struct {
		length int
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"baseline plus one", args{16}, 1},
		{"shortest qualifying default", args{22}, 49},
		{"forty", args{40}, 625},
		{"hundred", args{100}, 7225},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hitWeight(tt.args.length); got != tt.want {
				t.Errorf("hitWeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_creditGenus(t *testing.T) {
	var genera []GenusCount

	// first sight appends
	if got := creditGenus(&genera, 9, 0, 625); got != 0 {
		t.Errorf("creditGenus() = %v, want 0", got)
	}
	want := []GenusCount{{ID: 9, Count: 1, WeightedCount: 625, Round: 0}}
	if !reflect.DeepEqual(genera, want) {
		t.Errorf("genera = %v, want %v", genera, want)
	}

	// a second coordinate of the same round is absorbed
	if got := creditGenus(&genera, 9, 0, 625); got != 0 {
		t.Errorf("creditGenus() = %v, want 0", got)
	}
	if !reflect.DeepEqual(genera, want) {
		t.Errorf("genera after same-round credit = %v, want %v", genera, want)
	}

	// a later round accumulates
	if got := creditGenus(&genera, 9, 1, 49); got != 0 {
		t.Errorf("creditGenus() = %v, want 0", got)
	}
	want = []GenusCount{{ID: 9, Count: 2, WeightedCount: 674, Round: 1}}
	if !reflect.DeepEqual(genera, want) {
		t.Errorf("genera after second round = %v, want %v", genera, want)
	}

	// an unrelated genus gets its own entry
	if got := creditGenus(&genera, 4, 1, 49); got != 1 {
		t.Errorf("creditGenus() = %v, want 1", got)
	}
	if len(genera) != 2 || genera[1].ID != 4 {
		t.Errorf("genera = %v, want a second entry with id 4", genera)
	}
}

func Test_creditSpecies(t *testing.T) {
	genus := GenusCount{ID: 9, Count: 1, WeightedCount: 625, Round: 0}

	// first sight returns the new weight
	if got := creditSpecies(&genus, 101, 0, 625); got != 625 {
		t.Errorf("creditSpecies() = %v, want 625", got)
	}

	// same round returns 0 and changes nothing
	if got := creditSpecies(&genus, 101, 0, 625); got != 0 {
		t.Errorf("creditSpecies() same round = %v, want 0", got)
	}
	want := []SpeciesCount{{ID: 101, Count: 1, WeightedCount: 625, Round: 0}}
	if !reflect.DeepEqual(genus.Species, want) {
		t.Errorf("species = %v, want %v", genus.Species, want)
	}

	// a later round updates and returns the genus weighted count
	genus.Count, genus.WeightedCount, genus.Round = 2, 674, 1
	if got := creditSpecies(&genus, 101, 1, 49); got != 674 {
		t.Errorf("creditSpecies() update = %v, want 674", got)
	}
	want = []SpeciesCount{{ID: 101, Count: 2, WeightedCount: 674, Round: 1}}
	if !reflect.DeepEqual(genus.Species, want) {
		t.Errorf("species after update = %v, want %v", genus.Species, want)
	}

	// a sibling species starts its own tally
	if got := creditSpecies(&genus, 102, 1, 49); got != 49 {
		t.Errorf("creditSpecies() sibling = %v, want 49", got)
	}
	if len(genus.Species) != 2 || genus.Species[1].ID != 102 {
		t.Errorf("species = %v, want a second entry with id 102", genus.Species)
	}
}

// Weighted counts never decrease, whatever the credit order.
func Test_creditGenus_monotonic(t *testing.T) {
	var genera []GenusCount
	var prev uint64

	lens := []int{40, 22, 22, 31, 100, 40}
	for round, l := range lens {
		// two coordinates per round, the second a same-round duplicate
		creditGenus(&genera, 9, round, hitWeight(l))
		gi := creditGenus(&genera, 9, round, hitWeight(l))

		wc := genera[gi].WeightedCount
		if wc < prev {
			t.Fatalf("weighted count decreased from %v to %v at round %d", prev, wc, round)
		}
		prev = wc
	}

	if genera[0].Count != uint32(len(lens)) {
		t.Errorf("Count = %v, want %v", genera[0].Count, len(lens))
	}
}
