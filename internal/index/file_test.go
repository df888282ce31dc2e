package index

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/SooyeongHwang/centrifuge/internal/seed"
	"github.com/SooyeongHwang/centrifuge/internal/taxid"
)

func TestFM_Write_roundTrip(t *testing.T) {
	x := buildFM([]testRef{
		{"a", taxid.Pack(101, 9), "GATTACA"},
		{"b", taxid.Pack(102, 9), "CCGG"},
	}, 4, 8)

	path := filepath.Join(t.TempDir(), "refs.cfidx")
	if err := x.Write(path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	y, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !reflect.DeepEqual(x, y) {
		t.Errorf("Open() = %+v, want %+v", y, x)
	}

	// the reloaded index must search the same
	coords, _ := resolveAll(y, "TAC", false, 5)
	want := []seed.Coord{{Ref: 0, Off: 3, Fw: true}}
	if !reflect.DeepEqual(coords, want) {
		t.Errorf("Resolve(TAC) after reload = %v, want %v", coords, want)
	}
}

func TestOpen_errors(t *testing.T) {
	dir := t.TempDir()

	x := buildFM([]testRef{{"a", taxid.Pack(101, 9), "GATTACA"}}, 4, 8)
	good := filepath.Join(dir, "good.cfidx")
	if err := x.Write(good); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	raw, err := os.ReadFile(good)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	writeVariant := func(name string, mutate func([]byte) []byte) string {
		path := filepath.Join(dir, name)
		data := append([]byte(nil), raw...)
		if err := os.WriteFile(path, mutate(data), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{
			"truncated header",
			writeVariant("short.cfidx", func(b []byte) []byte { return b[:10] }),
			ErrBrokenFile,
		},
		{
			"wrong magic",
			writeVariant("magic.cfidx", func(b []byte) []byte { b[0] = 'x'; return b }),
			ErrInvalidFileFormat,
		},
		{
			"newer main version",
			writeVariant("version.cfidx", func(b []byte) []byte { b[8] = MainVersion + 1; return b }),
			ErrVersionMismatch,
		},
		{
			"flipped payload byte",
			writeVariant("flip.cfidx", func(b []byte) []byte { b[len(b)-1] ^= 0xff; return b }),
			ErrChecksumMismatch,
		},
		{
			"truncated payload",
			writeVariant("cut.cfidx", func(b []byte) []byte { return b[:len(b)-4] }),
			ErrChecksumMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.path)
			if errors.Cause(err) != tt.want {
				t.Errorf("Open() error = %v, want %v", err, tt.want)
			}
		})
	}
}
