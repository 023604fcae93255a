// Package hashing computes content digests of values and sequences.
//
// Digests are used to check the sort contract from the outside: a sorted
// sequence must be a permutation of its input (same Multiset fingerprint)
// and sorting it again must leave it byte-for-byte unchanged (same Ordered
// fingerprint).
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strconv"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// Sha256, XXH3 and XXHash64 are all HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// XXH3 returns the 64-bit XXH3 hash of the Hashable, hex-encoded.
func XXH3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXHash64 returns the 64-bit xxHash of the Hashable, hex-encoded.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

// Sequence hashes a slice element by element. Each element is written with a
// length prefix so that ["ab", "c"] and ["a", "bc"] hash differently.
type Sequence[T any] struct {
	Items   []T
	Encoder Encoder[T]
}

func (s Sequence[T]) UpdateHash(h hash.Hash) error {
	var buf []byte

	for _, item := range s.Items {
		buf = s.Encoder(buf[:0], item)

		if _, err := h.Write(strconv.AppendInt(nil, int64(len(buf)), 10)); err != nil {
			return err
		}

		if _, err := h.Write([]byte{':'}); err != nil {
			return err
		}

		if _, err := h.Write(buf); err != nil {
			return err
		}
	}

	return nil
}
