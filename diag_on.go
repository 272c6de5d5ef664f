//go:build hashset_diag

package hashset

// diagHook mirrors the original C++ implementation's `#if defined(TESTING)`
// QueryCount/ElementsTested counters. It costs one extra uint64 increment
// per Insert/Contains/Remove call plus one per probe step (per byte under
// Scalar, per 8-byte lane under SIMD16/SIMD32) when compiled in, so it
// lives behind a build tag rather
// than a runtime flag — the same tradeoff the original made with a
// preprocessor macro instead of a constructor argument.
type diagHook struct {
	queryCount     uint64
	elementsTested uint64
}

func (d *diagHook) recordQuery() { d.queryCount++ }

func (d *diagHook) recordElementsTested(n int) { d.elementsTested += uint64(n) }

// QueryCount reports how many Insert/Contains/Remove calls this set has
// served since construction or the last Reset. Built only with -tags
// hashset_diag.
func (s *Set[K]) QueryCount() uint64 { return s.t.diag.queryCount }

// ElementsTested reports how many metadata bytes have been examined across
// all probes this set has served, the per-byte counterpart to QueryCount.
// Built only with -tags hashset_diag.
func (s *Set[K]) ElementsTested() uint64 { return s.t.diag.elementsTested }
