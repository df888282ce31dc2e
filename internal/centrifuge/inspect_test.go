package centrifuge

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/SooyeongHwang/centrifuge/internal/index"
)

func Test_Inspect(t *testing.T) {
	dir := t.TempDir()
	x := testIndex(t, dir)

	var buf bytes.Buffer
	if err := Inspect(x, &buf); err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	out := buf.String()

	var stats index.Stats
	if err := json.Unmarshal([]byte(out[:strings.Index(out, "\n\n")]), &stats); err != nil {
		t.Fatalf("Inspect() stats are not JSON: %v", err)
	}
	if stats.References != 2 || stats.Bases != 128 {
		t.Errorf("Inspect() stats = %+v, want 2 references over 128 bases", stats)
	}

	for _, want := range []string{"reference", "alpha", "beta", "101", "202"} {
		if !strings.Contains(out, want) {
			t.Errorf("Inspect() output is missing %q:\n%s", want, out)
		}
	}
}
