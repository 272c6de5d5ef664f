package hashset

// Stats is a point-in-time snapshot of a set's occupancy, returned by
// Set.Stats. It carries no history — nothing here changes how the set
// itself behaves, it's purely for callers deciding whether a Compact is
// worth the cost.
type Stats struct {
	Size                    int
	Capacity                int
	Tombstones              int
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}
