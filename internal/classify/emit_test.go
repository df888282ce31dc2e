package classify

import (
	"reflect"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	type args struct {
		s string
	}
	tests := []struct {
		name    string
		args    args
		want    EmitStrategy
		wantErr bool
	}{
		{"empty means all", args{""}, EmitAll, false},
		{"all", args{"all"}, EmitAll, false},
		{"best", args{"best"}, EmitBest, false},
		{"unknown", args{"most"}, EmitAll, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.args.s)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStrategy() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseStrategy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func testGenera() []GenusCount {
	return []GenusCount{
		{
			ID: 1, Count: 2, WeightedCount: 100, Round: 1,
			Species: []SpeciesCount{
				{ID: 11, Count: 1, WeightedCount: 60, Round: 0},
				{ID: 12, Count: 1, WeightedCount: 80, Round: 1},
			},
		},
		{
			ID: 2, Count: 1, WeightedCount: 100, Round: 0,
			Species: []SpeciesCount{
				{ID: 21, Count: 1, WeightedCount: 10, Round: 0},
			},
		},
		{
			ID: 3, Count: 1, WeightedCount: 50, Round: 0,
			Species: []SpeciesCount{
				{ID: 31, Count: 1, WeightedCount: 999, Round: 0},
			},
		},
	}
}

func TestClassifier_emitAll(t *testing.T) {
	sink := &collectSink{}
	c := &Classifier{sink: sink, strategy: EmitAll, genera: testGenera()}

	if got := c.emit(); got != 4 {
		t.Errorf("emit() = %v, want 4", got)
	}

	want := []Result{
		{Species: 11, Genus: 1, Score: 160},
		{Species: 12, Genus: 1, Score: 180},
		{Species: 21, Genus: 2, Score: 110},
		{Species: 31, Genus: 3, Score: 1049},
	}
	if !reflect.DeepEqual(sink.results, want) {
		t.Errorf("emit() results = %v, want %v", sink.results, want)
	}
}

// Best-only emission keeps every genus tied for the top weighted count
// and the single best species under each.
func TestClassifier_emitBest(t *testing.T) {
	sink := &collectSink{}
	c := &Classifier{sink: sink, strategy: EmitBest, genera: testGenera()}

	if got := c.emit(); got != 2 {
		t.Errorf("emit() = %v, want 2", got)
	}

	want := []Result{
		{Species: 12, Genus: 1, Score: 180},
		{Species: 21, Genus: 2, Score: 110},
	}
	if !reflect.DeepEqual(sink.results, want) {
		t.Errorf("emit() results = %v, want %v", sink.results, want)
	}
}

func TestClassifier_emit_empty(t *testing.T) {
	sink := &collectSink{}
	c := &Classifier{sink: sink, strategy: EmitBest}

	if got := c.emit(); got != 0 {
		t.Errorf("emit() = %v, want 0", got)
	}
	if len(sink.results) != 0 {
		t.Errorf("emit() results = %v, want none", sink.results)
	}
}
