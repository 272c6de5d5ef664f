package hashset

import "golang.org/x/sys/cpu"

// SelectPolicy recommends the probing Policy the running CPU can execute
// fastest, mirroring the role the original C++ implementation's
// <emmintrin.h>/<immintrin.h> SSE/AVX intrinsics played in choosing between
// its SSE and AVX policy tags. This package has no assembly of its own —
// SIMD16/SIMD32 are portable SWAR passes over metadata bytes, not actual
// vector instructions — so the recommendation only affects which block
// width a table scans, not whether the scan is "real" SIMD. Callers that
// don't care are free to pass Scalar, or any fixed Policy, to New instead.
func SelectPolicy() Policy {
	switch {
	case cpu.X86.HasAVX2:
		return SIMD32
	case cpu.X86.HasSSE2:
		return SIMD16
	case cpu.ARM64.HasASIMD:
		return SIMD16
	default:
		return Scalar
	}
}
