package hashset

// loadLane assembles 8 consecutive metadata bytes, starting at start and
// wrapping at mask, into one little-endian uint64 lane suitable for the
// SWAR matchers in bits.go. Building the lane byte-by-byte (rather than via
// a direct slice cast) is what lets a block start at any slot — not just
// one aligned to a lane boundary — and still wrap correctly at the end of
// the table, exactly like the scalar walk does one byte at a time.
func loadLane(metadata []byte, start, mask uintptr) uint64 {
	var lane uint64
	for i := uintptr(0); i < laneWidthBytes; i++ {
		lane |= uint64(metadata[(start+i)&mask]) << (8 * i)
	}
	return lane
}

// locateBlock is the shared core behind locateSIMD16/locateSIMD32: it scans
// `lanes` 8-byte lanes at a time instead of scalar.go's one byte at a time,
// but visits the same bytes in the same order, so it must (and does) agree
// with locateScalar on every input.
//
// Within one lane, a tag match and an Empty byte can be tested in either
// order: if key is actually present, its slot was written before any
// Empty on its own probe walk ever could be (that's the insertion
// invariant locateInsertSpotScalar enforces), so a genuine match can never
// sit past a terminating Empty in the same walk. That's what lets this
// batch a whole lane's tag-compare and empty-detect instead of walking it
// byte by byte like scalar.go does.
func locateBlock[K comparable](t *table[K], key K, lanes int) (uintptr, bool) {
	hHigh, h7 := splitHash(t.hashFunc(key))
	target := metaFullBit | h7
	blockWidth := uintptr(lanes) * laneWidthBytes
	pos := uintptr(hHigh) & t.mask
	blocks := (t.mask + 1) / blockWidth

	for step := uintptr(0); step <= blocks; step++ {
		for lane := 0; lane < lanes; lane++ {
			laneStart := pos + uintptr(lane)*laneWidthBytes
			laneValue := loadLane(t.metadata, laneStart, t.mask)
			t.diag.recordElementsTested(laneWidthBytes)

			matches := matchByteExact(laneValue, target)
			for matches != 0 {
				slotIdx := (laneStart + matches.first()) & t.mask
				if t.data[slotIdx] == key {
					return slotIdx, true
				}
				matches = matches.removeFirst()
			}
			if matchEmptyLane(laneValue) != 0 {
				return 0, false
			}
		}
		pos = (pos + blockWidth) & t.mask
	}
	return 0, false
}

// locateInsertSpotBlock is the block-scanning counterpart to
// locateInsertSpotScalar. Tag matches within a lane are still safe to check
// in any order (see locateBlock), but distinguishing "first tombstone" from
// "terminating empty" genuinely depends on which comes first in probe
// order, so that part walks the lane's non-full bytes low-to-high via
// bitset.first()/removeFirst() — which, because loadLane packs byte i into
// bits [8i, 8i+8), visits them in the same order scalar.go would.
func locateInsertSpotBlock[K comparable](t *table[K], key K, lanes int) probeResult {
	hHigh, h7 := splitHash(t.hashFunc(key))
	target := metaFullBit | h7
	blockWidth := uintptr(lanes) * laneWidthBytes
	pos := uintptr(hHigh) & t.mask
	blocks := (t.mask + 1) / blockWidth

	haveTombstone := false
	var tombstoneIdx uintptr

	for step := uintptr(0); step <= blocks; step++ {
		for lane := 0; lane < lanes; lane++ {
			laneStart := pos + uintptr(lane)*laneWidthBytes
			laneValue := loadLane(t.metadata, laneStart, t.mask)
			t.diag.recordElementsTested(laneWidthBytes)

			matches := matchByteExact(laneValue, target)
			for matches != 0 {
				slotIdx := (laneStart + matches.first()) & t.mask
				if t.data[slotIdx] == key {
					return probeResult{idx: slotIdx, h7: h7, present: true, ok: true}
				}
				matches = matches.removeFirst()
			}

			nonFull := matchNonFullLane(laneValue)
			for nonFull != 0 {
				slotIdx := (laneStart + nonFull.first()) & t.mask
				if t.metadata[slotIdx] == metaEmpty {
					if haveTombstone {
						return probeResult{idx: tombstoneIdx, h7: h7, ok: true}
					}
					return probeResult{idx: slotIdx, h7: h7, ok: true}
				}
				if !haveTombstone {
					haveTombstone = true
					tombstoneIdx = slotIdx
				}
				nonFull = nonFull.removeFirst()
			}
		}
		pos = (pos + blockWidth) & t.mask
	}
	// No Empty anywhere: the whole table was scanned without finding key, so
	// the first tombstone seen is a valid spot (see locateInsertSpotScalar).
	if haveTombstone {
		return probeResult{idx: tombstoneIdx, h7: h7, ok: true}
	}
	return probeResult{}
}
