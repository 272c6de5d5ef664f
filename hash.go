package hashset

import "hash/maphash"

// HashFunc reduces a key to a 64-bit hash. The low 7 bits of the result
// become the metadata tag stored alongside the key; bits 8 and up determine
// the key's home slot, and bit 7 is not used. A poor hash function only costs probe length, never
// correctness.
type HashFunc[K comparable] func(K) uint64

// Integer constrains the key types DefaultHash supports. A default hash
// function is only ever provided for integer keys — any other key type must
// be constructed with an explicit HashFunc, which Go enforces at compile
// time by simply not offering a zero-argument constructor for them (see
// NewIntegerSet vs New).
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// DefaultHash is a Knuth-style multiplicative hash for integer keys:
// 17 + k*2654435761, reinterpreted as a 64-bit unsigned value. Converting a
// signed K straight to uint64 reinterprets its two's-complement bit pattern,
// so negative keys hash just as well as positive ones.
func DefaultHash[K Integer](k K) uint64 {
	return 17 + uint64(k)*2654435761
}

// splitHash separates a 64-bit hash into the probe's starting index
// contribution (the high part) and the 7-bit metadata tag (the low part).
// Discarding the 8 low bits before masking for the home index, rather than
// reusing bits the tag already consumed, decorrelates the tag from the home
// slot so that colliding keys rarely share a tag too.
func splitHash(h uint64) (hHigh uint64, h7 byte) {
	return h >> 8, byte(h & 0x7F)
}

// HashComparableKey builds a HashFunc for any comparable key type using
// hash/maphash.Comparable — the stdlib's only hash that is generic over an
// arbitrary comparable, and so the right tool for a key shape that is
// neither an integer nor string-like (see DefaultHash, HashStringKey for
// those).
func HashComparableKey[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
