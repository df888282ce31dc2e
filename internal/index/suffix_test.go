package index

import (
	"bytes"
	"reflect"
	"sort"
	"testing"
)

func naiveSuffixArray(text []byte) []int32 {
	sa := make([]int32, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

func Test_suffixArray(t *testing.T) {
	type args struct {
		text []byte
	}
	tests := []struct {
		name string
		args args
	}{
		{"single sentinel", args{[]byte{0}}},
		{"one base", args{[]byte{3, 0}}},
		{"run of equal bases", args{[]byte{1, 1, 1, 1, 1, 1, 1, 0}}},
		{"alternating bases", args{[]byte{1, 2, 1, 2, 1, 2, 0}}},
		{"mixed", args{[]byte{2, 1, 4, 1, 4, 1, 0}}},
		{"two sentinel-free repeats", args{[]byte{4, 4, 1, 4, 4, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := suffixArray(tt.args.text); !reflect.DeepEqual(got, naiveSuffixArray(tt.args.text)) {
				t.Errorf("suffixArray() = %v, want %v", got, naiveSuffixArray(tt.args.text))
			}
		})
	}
}

// The suffix order of a reversed, recoded reference worked out by hand.
func Test_suffixArray_reversedReference(t *testing.T) {
	store := &Store{}
	store.Append("ref", 0, []byte("GATTACA"))

	text := store.reverseText()
	if want := []byte{1, 2, 1, 4, 4, 1, 3, 0}; !bytes.Equal(text, want) {
		t.Fatalf("reverseText() = %v, want %v", text, want)
	}

	want := []int32{7, 0, 5, 2, 1, 6, 4, 3}
	if got := suffixArray(text); !reflect.DeepEqual(got, want) {
		t.Errorf("suffixArray() = %v, want %v", got, want)
	}
}
