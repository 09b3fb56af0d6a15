// Package villains turns per-issue antagonist name lists into a
// deduplicated registry, a per-issue timeline and summary statistics.
package villains

// Record is one issue's extraction result. An issue whose fetch failed
// still produces a Record, with an empty name list and a sentinel title.
type Record struct {
	Issue       int
	Title       string
	Antagonists []string
}

// Villain is one deduplicated character identity. The normalized name is
// the identity key; the ID is a derived slug used for display and lookup
// only, never for equality.
type Villain struct {
	ID              string
	Name            string
	Appearances     []int
	FirstAppearance int
}

// Frequency is always derived from the appearance set, never stored.
func (v *Villain) Frequency() int {
	return len(v.Appearances)
}

// TimelineEntry holds the villains present in one issue, one entry per
// input Record in input order.
type TimelineEntry struct {
	Issue      int
	VillainIDs []string
	Count      int
}

type Summary struct {
	TotalVillains    int
	MostFrequent     *Villain
	AverageFrequency float64
}

// Result is the output of one aggregation pass. Registry preserves
// first-seen insertion order.
type Result struct {
	Registry []*Villain
	Timeline []TimelineEntry
	Summary  Summary
}
