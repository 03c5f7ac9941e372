package section

import (
	"bytes"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// StringSet collects strings for a write-pass string table: it
// deduplicates insertions and, on Sorted, returns the strictly ascending,
// duplicate-free slice the on-disk table requires.
//
// Membership is checked through a hash-bucketed map (xxHash64) so that
// harvesting strings from a large document stays close to O(1) per
// insertion; a hash collision between two distinct strings falls back to
// an exact comparison so it can never cause a false dedup.
type StringSet struct {
	buckets map[uint64][]string
	count   int
}

// NewStringSet creates an empty StringSet.
func NewStringSet() *StringSet {
	return &StringSet{buckets: make(map[uint64][]string)}
}

// Add inserts s if it is not already present.
func (s *StringSet) Add(str string) {
	h := xxhash.Sum64String(str)
	for _, existing := range s.buckets[h] {
		if existing == str {
			return
		}
	}

	s.buckets[h] = append(s.buckets[h], str)
	s.count++
}

// Len returns the number of distinct strings inserted so far.
func (s *StringSet) Len() int {
	return s.count
}

// Sorted returns the distinct strings in strictly ascending UTF-8 byte
// order, as required by the on-disk string table.
func (s *StringSet) Sorted() []string {
	out := make([]string, 0, s.count)
	for _, bucket := range s.buckets {
		out = append(out, bucket...)
	}

	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare([]byte(out[i]), []byte(out[j])) < 0
	})

	return out
}

// Index builds an index mapping each distinct string to its position in
// the sorted table, for use while emitting node payloads.
func Index(sorted []string) map[string]uint32 {
	idx := make(map[string]uint32, len(sorted))
	for i, s := range sorted {
		idx[s] = uint32(i)
	}

	return idx
}
