package hashset

// Earlier swiss-table designs group slots into independent 8-wide buckets,
// each with its own control word, and probe bucket-to-bucket. This engine
// instead keeps one flat metadata array and one flat key array spanning the
// whole table — linear probing walks the table itself, not a chain of
// independent buckets — so `group` no longer names a storage bucket. What
// survives is the geometry: the width, in bytes, of the contiguous metadata
// window a SIMD-style policy scans as a unit, and how many 8-byte SWAR
// lanes make up that window.

// laneWidthBytes is the number of metadata bytes a single SWAR lane covers.
const laneWidthBytes = 8

// blockWidthBytes returns the number of contiguous metadata bytes scanned
// together under policy p. Scalar has no block structure; it walks one byte
// at a time.
func blockWidthBytes(p Policy) uintptr {
	switch p {
	case SIMD32:
		return 4 * laneWidthBytes
	case SIMD16:
		return 2 * laneWidthBytes
	default:
		return 0
	}
}

// laneCount returns the number of 8-byte SWAR lanes composing one block
// under policy p.
func laneCount(p Policy) int {
	switch p {
	case SIMD32:
		return 4
	case SIMD16:
		return 2
	default:
		return 0
	}
}

// minCapacityFor returns the smallest capacity a table constructed with
// policy p may have: one full SIMD block for SIMD16/SIMD32, so that a single
// block scan never covers the same slot twice, or a small constant for
// Scalar.
func minCapacityFor(p Policy) uintptr {
	if w := blockWidthBytes(p); w != 0 {
		return w
	}
	return 8
}
