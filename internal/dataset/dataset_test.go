package dataset

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liammcnabb/spider-man-villain-viz/internal/villains"
)

func sampleResult(t *testing.T) *villains.Result {
	t.Helper()

	res, err := villains.Aggregate([]villains.Record{
		{Issue: 1, Antagonists: []string{"Green Goblin (Norman Osborn)", "Vulture"}},
		{Issue: 2, Antagonists: nil},
		{Issue: 3, Antagonists: []string{"Green Goblin"}},
	})
	require.NoError(t, err)

	return res
}

func TestBuild(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ds := Build("Amazing Spider-Man", sampleResult(t), at)

	assert.Equal(t, "Amazing Spider-Man", ds.Series)
	assert.Equal(t, "2026-01-02T03:04:05Z", ds.ProcessedAt)

	assert.Equal(t, 2, ds.Stats.TotalVillains)
	assert.Equal(t, "Green Goblin", ds.Stats.MostFrequent)
	assert.Equal(t, 2, ds.Stats.MostFrequentCount)
	assert.InDelta(t, 1.5, ds.Stats.AverageFrequency, 1e-9)

	require.Len(t, ds.Villains, 2)
	assert.Equal(t, "green-goblin", ds.Villains[0].ID)
	assert.Equal(t, []int{1, 3}, ds.Villains[0].Appearances)
	assert.Equal(t, 2, ds.Villains[0].Frequency)
	assert.NotNil(t, ds.Villains[0].Aliases, "aliases must serialize as [], not null")

	require.Len(t, ds.Timeline, 3)
	assert.Equal(t, 0, ds.Timeline[1].VillainCount)
	assert.Equal(t, []string{"Green Goblin"}, ds.Timeline[2].Villains)
}

func TestBuild_AverageFrequencyRounding(t *testing.T) {
	res, err := villains.Aggregate([]villains.Record{
		{Issue: 1, Antagonists: []string{"A", "B", "C"}},
		{Issue: 2, Antagonists: []string{"A"}},
	})
	require.NoError(t, err)

	ds := Build("ASM", res, time.Now())

	// 4/3 rounds to two decimals.
	assert.Equal(t, 1.33, ds.Stats.AverageFrequency)
}

// The serialized field names are a compatibility contract with the chart
// renderer; this test pins them.
func TestDataset_JSONShape(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	res, err := villains.Aggregate([]villains.Record{
		{Issue: 1, Antagonists: []string{"Vulture"}},
	})
	require.NoError(t, err)

	out, err := json.Marshal(Build("ASM", res, at))
	require.NoError(t, err)

	expected := `{
		"series": "ASM",
		"processedAt": "2026-01-02T03:04:05Z",
		"stats": {
			"totalVillains": 1,
			"mostFrequent": "Vulture",
			"mostFrequentCount": 1,
			"averageFrequency": 1
		},
		"villains": [
			{
				"id": "vulture",
				"name": "Vulture",
				"aliases": [],
				"firstAppearance": 1,
				"appearances": [1],
				"frequency": 1
			}
		],
		"timeline": [
			{"issue": 1, "villainCount": 1, "villains": ["Vulture"]}
		]
	}`

	assert.JSONEq(t, expected, string(out))
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "villains.json")

	ds := Build("ASM", sampleResult(t), time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, ds.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ds, loaded)
}

func TestBuild_EmptyResult(t *testing.T) {
	res, err := villains.Aggregate(nil)
	require.NoError(t, err)

	ds := Build("ASM", res, time.Now())

	assert.Equal(t, 0, ds.Stats.TotalVillains)
	assert.Equal(t, "", ds.Stats.MostFrequent)
	assert.Zero(t, ds.Stats.AverageFrequency)
	assert.NotNil(t, ds.Villains)
	assert.NotNil(t, ds.Timeline)
}
