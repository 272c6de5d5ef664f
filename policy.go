package hashset

// Policy selects which probing engine a table uses. The choice is made once,
// at construction, and never changes for the table's lifetime — all three
// policies are observably equivalent (same Contains/Count/Capacity results
// for the same operation sequence), differing only in how fast they get
// there.
type Policy int

const (
	// Scalar walks the metadata array one byte at a time. It has no
	// alignment or minimum-capacity requirement beyond the table's own
	// and is the correct fallback when the other two don't apply.
	Scalar Policy = iota
	// SIMD16 scans 16 contiguous metadata bytes (two 8-byte SWAR lanes)
	// per step, modeling a 128-bit SIMD compare.
	SIMD16
	// SIMD32 scans 32 contiguous metadata bytes (four 8-byte SWAR lanes)
	// per step, modeling a 256-bit SIMD compare. Preferred when capacity
	// allows it and the CPU has wide integer SIMD (see SelectPolicy).
	SIMD32
)

// String renders the policy name, primarily for test and benchmark output.
func (p Policy) String() string {
	switch p {
	case SIMD16:
		return "SIMD16"
	case SIMD32:
		return "SIMD32"
	default:
		return "Scalar"
	}
}
