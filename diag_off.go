//go:build !hashset_diag

package hashset

// diagHook is a zero-size no-op outside -tags hashset_diag, so the counters
// in diag_on.go cost nothing in a normal build — not even the struct
// fields exist, let alone the increments.
type diagHook struct{}

func (d *diagHook) recordQuery() {}

func (d *diagHook) recordElementsTested(n int) {}
