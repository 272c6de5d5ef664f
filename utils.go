package hashset

import (
	"math/bits"
	"unsafe"
)

// nextPowerOf2 rounds v up to the next power of 2, treating 0 and 1 as 1.
// Internal capacities are always a power of 2 so that `& mask` can stand in
// for `% capacity` on every probe step.
func nextPowerOf2(v uintptr) uintptr {
	if v <= 1 {
		return 1
	}
	return uintptr(1) << bits.Len(uint(v-1))
}

// CapacityFromSize estimates how many slots of key type K fit in a memory
// budget of size bytes, accounting for the metadata byte that accompanies
// every key slot. Useful for sizing a set up front from a fixed arena
// rather than letting it grow by doubling.
func CapacityFromSize[K comparable](size uintptr) int {
	var k K
	perSlot := unsafe.Sizeof(k) + 1 // +1 for the metadata byte
	if perSlot == 0 {
		return 0
	}
	return int(size / perSlot)
}
