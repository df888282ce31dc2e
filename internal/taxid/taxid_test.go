package taxid

import (
	"testing"
)

func TestPack(t *testing.T) {
	type args struct {
		species uint32
		genus   uint32
	}
	tests := []struct {
		name string
		args args
		want Packed
	}{
		{
			"species and genus",
			args{species: 562, genus: 561},
			Packed(562<<32 | 561),
		},
		{
			"zero ids",
			args{species: 0, genus: 0},
			Unknown,
		},
		{
			"genus only",
			args{species: 0, genus: 1386},
			Packed(1386),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.args.species, tt.args.genus); got != tt.want {
				t.Errorf("Pack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPacked_SpeciesGenus(t *testing.T) {
	p := Pack(1280, 1279)

	if got := p.Species(); got != 1280 {
		t.Errorf("Packed.Species() = %v, want %v", got, 1280)
	}
	if got := p.Genus(); got != 1279 {
		t.Errorf("Packed.Genus() = %v, want %v", got, 1279)
	}
}

func TestParse(t *testing.T) {
	type args struct {
		name string
	}
	tests := []struct {
		name    string
		args    args
		want    Packed
		wantErr bool
	}{
		{
			"bare id",
			args{name: "2413913250161"},
			Packed(2413913250161),
			false,
		},
		{
			"id with description",
			args{name: "5497558140561 Escherichia coli K-12"},
			Packed(5497558140561),
			false,
		},
		{
			"id with pipe",
			args{name: "5497558140561|gb|U00096.3"},
			Packed(5497558140561),
			false,
		},
		{
			"no id",
			args{name: "chr1 Homo sapiens"},
			Unknown,
			true,
		},
		{
			"empty name",
			args{name: ""},
			Unknown,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}
