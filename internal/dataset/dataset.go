// Package dataset defines the serialized output of a scrape run. Field
// names and nesting are a compatibility contract with the chart renderer;
// renaming any of them breaks downstream consumers.
package dataset

import (
	"math"
	"time"

	"github.com/liammcnabb/spider-man-villain-viz/internal/util"
	"github.com/liammcnabb/spider-man-villain-viz/internal/villains"
)

type Dataset struct {
	Series      string          `json:"series"`
	ProcessedAt string          `json:"processedAt"`
	Stats       Stats           `json:"stats"`
	Villains    []VillainEntry  `json:"villains"`
	Timeline    []TimelineEntry `json:"timeline"`
}

type Stats struct {
	TotalVillains     int     `json:"totalVillains"`
	MostFrequent      string  `json:"mostFrequent"`
	MostFrequentCount int     `json:"mostFrequentCount"`
	AverageFrequency  float64 `json:"averageFrequency"`
}

type VillainEntry struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Aliases         []string `json:"aliases"`
	FirstAppearance int      `json:"firstAppearance"`
	Appearances     []int    `json:"appearances"`
	Frequency       int      `json:"frequency"`
}

type TimelineEntry struct {
	Issue        int      `json:"issue"`
	VillainCount int      `json:"villainCount"`
	Villains     []string `json:"villains"`
}

// Build converts an aggregation result into the serialized shape. The
// timestamp is injected by the caller so reprocessing the same input can
// produce identical datasets.
func Build(series string, res *villains.Result, processedAt time.Time) *Dataset {
	ds := &Dataset{
		Series:      series,
		ProcessedAt: processedAt.UTC().Format(time.RFC3339),
		Stats: Stats{
			TotalVillains:    res.Summary.TotalVillains,
			AverageFrequency: round2(res.Summary.AverageFrequency),
		},
		Villains: make([]VillainEntry, 0, len(res.Registry)),
		Timeline: make([]TimelineEntry, 0, len(res.Timeline)),
	}

	if mf := res.Summary.MostFrequent; mf != nil {
		ds.Stats.MostFrequent = mf.Name
		ds.Stats.MostFrequentCount = mf.Frequency()
	}

	nameByID := make(map[string]string, len(res.Registry))

	for _, v := range res.Registry {
		nameByID[v.ID] = v.Name

		ds.Villains = append(ds.Villains, VillainEntry{
			ID:              v.ID,
			Name:            v.Name,
			Aliases:         []string{},
			FirstAppearance: v.FirstAppearance,
			Appearances:     v.Appearances,
			Frequency:       v.Frequency(),
		})
	}

	for _, t := range res.Timeline {
		entry := TimelineEntry{
			Issue:        t.Issue,
			VillainCount: t.Count,
			Villains:     make([]string, 0, len(t.VillainIDs)),
		}
		for _, id := range t.VillainIDs {
			entry.Villains = append(entry.Villains, nameByID[id])
		}
		ds.Timeline = append(ds.Timeline, entry)
	}

	return ds
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func (d *Dataset) Write(path string) error {
	return util.WriteJSON(path, d)
}

func Load(path string) (*Dataset, error) {
	var d Dataset
	if err := util.ReadJSON(path, &d); err != nil {
		return nil, err
	}

	return &d, nil
}
