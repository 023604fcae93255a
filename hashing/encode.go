package hashing

import (
	"encoding/binary"
	"math"
)

// Encoder appends a canonical byte form of v to dst and returns the
// extended slice.
type Encoder[T any] func(dst []byte, v T) []byte

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int encodes signed integers as 8 big-endian bytes.
func Int[T signed]() Encoder[T] {
	return func(dst []byte, v T) []byte {
		return binary.BigEndian.AppendUint64(dst, uint64(int64(v))) //nolint:gosec
	}
}

// Uint encodes unsigned integers as 8 big-endian bytes.
func Uint[T unsigned]() Encoder[T] {
	return func(dst []byte, v T) []byte {
		return binary.BigEndian.AppendUint64(dst, uint64(v))
	}
}

// Float encodes the IEEE-754 bits of v. All NaNs encode alike.
func Float[T ~float32 | ~float64]() Encoder[T] {
	return func(dst []byte, v T) []byte {
		f := float64(v)
		if math.IsNaN(f) {
			f = math.NaN()
		}

		return binary.BigEndian.AppendUint64(dst, math.Float64bits(f))
	}
}

// String encodes the raw bytes of a string.
func String[T ~string]() Encoder[T] {
	return func(dst []byte, v T) []byte {
		return append(dst, v...)
	}
}

// Bytes encodes a byte slice. A nil slice and an empty one encode
// differently.
func Bytes() Encoder[[]byte] {
	return func(dst []byte, v []byte) []byte {
		if v == nil {
			return append(dst, 0xff)
		}

		return append(append(dst, 0x00), v...)
	}
}
