package hashing

import (
	"fmt"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// Fingerprint summarizes a sequence.
//
// Ordered depends on the elements and their order. Multiset depends only on
// which elements occur and how often, so any permutation of a sequence has
// the same Multiset value.
type Fingerprint struct {
	Ordered  uint64
	Multiset uint64
	Count    int
}

// Of fingerprints seq using enc to turn each element into bytes.
func Of[T any](seq []T, enc Encoder[T]) Fingerprint {
	ordered := xxhash.New64()

	var (
		buf      []byte
		multiset uint64
		prefix   [8]byte
	)

	for _, item := range seq {
		buf = enc(buf[:0], item)

		n := len(buf)
		for i := range prefix {
			prefix[i] = byte(n >> (8 * i))
		}

		_, _ = ordered.Write(prefix[:])
		_, _ = ordered.Write(buf)

		// Wrapping addition is commutative, which makes the sum order-free.
		multiset += xxh3.Hash(buf)
	}

	return Fingerprint{
		Ordered:  ordered.Sum64(),
		Multiset: multiset,
		Count:    len(seq),
	}
}

// SameElements reports whether both fingerprints describe permutations of
// the same multiset.
func (f Fingerprint) SameElements(other Fingerprint) bool {
	return f.Count == other.Count && f.Multiset == other.Multiset
}

// Identical reports whether both fingerprints describe the same sequence.
func (f Fingerprint) Identical(other Fingerprint) bool {
	return f.SameElements(other) && f.Ordered == other.Ordered
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x/%016x/%d", f.Ordered, f.Multiset, f.Count)
}
