package hashset

import (
	"math/bits"
)

const (
	bitsetLSB = 0x0101010101010101
	bitsetMSB = 0x8080808080808080
)

// Metadata byte values, per the layout fixed by the set's invariants: bit 7
// (VALID) set means Full, with the 7-bit hash tag in bits 0-6; bit 6
// (TOMBSTONE) set with bit 7 clear means Tombstone; all bits clear means
// Empty. Other bit patterns never appear in a metadata byte.
const (
	metaEmpty     byte = 0x00
	metaTombstone byte = 0x40
	metaFullBit   byte = 0x80
	metaTagMask   byte = 0x7F
)

// bitset represents a set of slots within an 8-byte metadata lane.
//
// The underlying representation uses one byte per slot, where each byte is
// either 0x80 if the slot is part of the set or 0x00 otherwise. This makes it
// convenient to calculate for a whole lane at once (e.g. see matchEmptyLane).
type bitset uint64

// first assumes that only the MSB of each byte can be set (e.g. bitset is
// the result of matchEmptyLane or similar) and returns the relative index,
// within the lane, of the first byte that has the MSB set.
func (b bitset) first() uintptr {
	return uintptr(bits.TrailingZeros64(uint64(b)) >> 3)
}

// removeFirst clears the least-significant set byte (resets its MSB to 0).
func (b bitset) removeFirst() bitset {
	return b &^ (bitset(metaFullBit) << (bits.TrailingZeros64(uint64(b)) &^ 7))
}

// matchByteExact finds every byte position in lane whose value equals
// target, using the classic SWAR zero-byte-detection trick: XOR the target
// out, then the expression below isolates any byte that became all-zero.
//
//go:inline
func matchByteExact(lane uint64, target byte) bitset {
	v := lane ^ (bitsetLSB * uint64(target))
	return bitset(((v - bitsetLSB) &^ v) & bitsetMSB)
}

// matchEmptyLane finds every byte in lane equal to metaEmpty (0x00).
//
//go:inline
func matchEmptyLane(lane uint64) bitset {
	return bitset(((lane - bitsetLSB) &^ lane) & bitsetMSB)
}

// matchNonFullLane finds every byte in lane with bit 7 clear, i.e. every
// slot that is either Empty or Tombstone and therefore a legal insertion
// spot.
//
//go:inline
func matchNonFullLane(lane uint64) bitset {
	return bitset(^lane & bitsetMSB)
}
