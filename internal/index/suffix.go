package index

import (
	"github.com/twotwotwo/sorts"
)

// bySuffixKey radix-sorts suffix ids by their current doubling key.
type bySuffixKey struct {
	sa  []int32
	key []uint64
}

func (s bySuffixKey) Len() int           { return len(s.sa) }
func (s bySuffixKey) Less(i, j int) bool { return s.key[s.sa[i]] < s.key[s.sa[j]] }
func (s bySuffixKey) Swap(i, j int)      { s.sa[i], s.sa[j] = s.sa[j], s.sa[i] }
func (s bySuffixKey) Key(i int) uint64   { return s.key[s.sa[i]] }

// suffixArray sorts the suffixes of the terminated text by prefix
// doubling. Each pass keys a suffix by its rank pair at the current
// span and re-ranks until all suffixes are distinct, which the
// sentinel guarantees.
func suffixArray(text []byte) []int32 {
	n := len(text)
	sa := make([]int32, n)
	rank := make([]uint32, n)
	next := make([]uint32, n)
	key := make([]uint64, n)

	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rank[i] = uint32(text[i])
	}

	for k := 1; ; k *= 2 {
		for i := 0; i < n; i++ {
			hi := uint64(rank[i]) + 1
			var lo uint64
			if i+k < n {
				lo = uint64(rank[i+k]) + 1
			}
			key[i] = hi<<32 | lo
		}
		sorts.ByUint64(bySuffixKey{sa, key})

		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			r := next[sa[i-1]]
			if key[sa[i]] != key[sa[i-1]] {
				r++
			}
			next[sa[i]] = r
		}
		copy(rank, next)

		if int(rank[sa[n-1]]) == n-1 {
			break
		}
	}
	return sa
}
