package hashset

import "github.com/cespare/xxhash/v2"

// HashStringKey builds a HashFunc[string] backed by xxhash, a fast
// non-cryptographic hash well suited to the short, high-volume lookups a
// hash set does. DefaultHash only covers integer keys; this is the
// equivalent convenience for string keys, sparing callers from hand-rolling
// one themselves. (A []byte equivalent isn't offered: []byte isn't
// comparable, so it can never satisfy a Set's key constraint — callers
// with byte-oriented keys should key on a fixed-size array or string.)
func HashStringKey() HashFunc[string] {
	return xxhash.Sum64String
}
