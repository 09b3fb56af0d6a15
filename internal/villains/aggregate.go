package villains

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/montanaflynn/stats"
)

// ErrInvalidInput marks aggregation input that cannot be processed at all.
// Empty antagonist lists are valid input and never trigger it.
var ErrInvalidInput = errors.New("invalid aggregation input")

// Aggregate runs the single reduction pass over records in input order and
// builds the registry, timeline and summary. Each call constructs its own
// registry from scratch, so feeding the same input twice produces
// identical output.
func Aggregate(records []Record) (*Result, error) {
	for i, r := range records {
		if r.Issue < 1 {
			return nil, fmt.Errorf("%w: record %d has no issue key", ErrInvalidInput, i)
		}
	}

	byName := make(map[string]*Villain)
	registry := make([]*Villain, 0)

	for _, r := range records {
		for _, raw := range r.Antagonists {
			name := Normalize(raw)
			if name == "" {
				continue
			}

			v, ok := byName[name]
			if !ok {
				v = &Villain{
					ID:              Slugify(name),
					Name:            name,
					Appearances:     []int{r.Issue},
					FirstAppearance: r.Issue,
				}
				byName[name] = v
				registry = append(registry, v)
				continue
			}

			// Repeat mentions within one record must not inflate frequency.
			if !slices.Contains(v.Appearances, r.Issue) {
				v.Appearances = append(v.Appearances, r.Issue)
			}
		}
	}

	// Records normally arrive in ascending issue order, but the exposed
	// appearance sets must be sorted regardless of input order.
	for _, v := range registry {
		sort.Ints(v.Appearances)
		v.FirstAppearance = v.Appearances[0]
	}

	timeline := make([]TimelineEntry, 0, len(records))
	for _, r := range records {
		entry := TimelineEntry{Issue: r.Issue, VillainIDs: []string{}}
		for _, v := range registry {
			if slices.Contains(v.Appearances, r.Issue) {
				entry.VillainIDs = append(entry.VillainIDs, v.ID)
			}
		}
		entry.Count = len(entry.VillainIDs)
		timeline = append(timeline, entry)
	}

	return &Result{
		Registry: registry,
		Timeline: timeline,
		Summary:  summarize(registry),
	}, nil
}

// summarize picks the most frequent villain (ties broken by earliest first
// appearance, then first-seen order) and the mean frequency.
func summarize(registry []*Villain) Summary {
	s := Summary{TotalVillains: len(registry)}
	if len(registry) == 0 {
		return s
	}

	freqs := make([]float64, len(registry))
	best := registry[0]

	for i, v := range registry {
		freqs[i] = float64(v.Frequency())

		if v.Frequency() > best.Frequency() ||
			(v.Frequency() == best.Frequency() && v.FirstAppearance < best.FirstAppearance) {
			best = v
		}
	}

	s.MostFrequent = best

	if mean, err := stats.Mean(freqs); err == nil {
		s.AverageFrequency = mean
	}

	return s
}
