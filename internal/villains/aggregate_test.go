package villains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_SingleAppearance(t *testing.T) {
	res, err := Aggregate([]Record{
		{Issue: 1, Title: "ASM #1", Antagonists: []string{"Green Goblin (Norman Osborn)"}},
	})

	require.NoError(t, err)
	require.Len(t, res.Registry, 1)

	v := res.Registry[0]
	assert.Equal(t, "Green Goblin", v.Name)
	assert.Equal(t, "green-goblin", v.ID)
	assert.Equal(t, []int{1}, v.Appearances)
	assert.Equal(t, 1, v.FirstAppearance)
	assert.Equal(t, 1, v.Frequency())
}

func TestAggregate_RecurringVillain(t *testing.T) {
	res, err := Aggregate([]Record{
		{Issue: 1, Antagonists: []string{"Villain A"}},
		{Issue: 2, Antagonists: []string{"Villain A"}},
		{Issue: 3, Antagonists: []string{"Villain A"}},
	})

	require.NoError(t, err)
	require.Len(t, res.Registry, 1)
	assert.Equal(t, []int{1, 2, 3}, res.Registry[0].Appearances)
	assert.Equal(t, 3, res.Registry[0].Frequency())
}

func TestAggregate_EmptyRecordKeepsTimelineSlot(t *testing.T) {
	res, err := Aggregate([]Record{
		{Issue: 1, Antagonists: nil},
		{Issue: 2, Antagonists: []string{"Villain A"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Summary.TotalVillains)
	require.Len(t, res.Timeline, 2)
	assert.Equal(t, TimelineEntry{Issue: 1, VillainIDs: []string{}, Count: 0}, res.Timeline[0])
	assert.Equal(t, TimelineEntry{Issue: 2, VillainIDs: []string{"villain-a"}, Count: 1}, res.Timeline[1])
}

func TestAggregate_SummaryStats(t *testing.T) {
	res, err := Aggregate([]Record{
		{Issue: 1, Antagonists: []string{"A", "B"}},
		{Issue: 2, Antagonists: []string{"A"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Summary.TotalVillains)
	require.NotNil(t, res.Summary.MostFrequent)
	assert.Equal(t, "A", res.Summary.MostFrequent.Name)
	assert.InDelta(t, 1.5, res.Summary.AverageFrequency, 1e-9)
}

func TestAggregate_DuplicateMentionInOneRecord(t *testing.T) {
	res, err := Aggregate([]Record{
		{Issue: 5, Antagonists: []string{"Chameleon", "Chameleon (disguised)", "Chameleon"}},
	})

	require.NoError(t, err)
	require.Len(t, res.Registry, 1)
	assert.Equal(t, []int{5}, res.Registry[0].Appearances)
	assert.Equal(t, 1, res.Registry[0].Frequency())
}

func TestAggregate_TieBreaksByFirstAppearance(t *testing.T) {
	res, err := Aggregate([]Record{
		{Issue: 1, Antagonists: []string{"Later Villain"}},
		{Issue: 2, Antagonists: []string{"Early Villain"}},
	})

	require.NoError(t, err)
	// Both have frequency 1; the earlier first appearance wins.
	assert.Equal(t, "Later Villain", res.Summary.MostFrequent.Name)
}

func TestAggregate_UnorderedInputSortsAppearances(t *testing.T) {
	res, err := Aggregate([]Record{
		{Issue: 9, Antagonists: []string{"Electro"}},
		{Issue: 3, Antagonists: []string{"Electro"}},
		{Issue: 7, Antagonists: []string{"Electro"}},
	})

	require.NoError(t, err)
	require.Len(t, res.Registry, 1)
	assert.Equal(t, []int{3, 7, 9}, res.Registry[0].Appearances)
	assert.Equal(t, 3, res.Registry[0].FirstAppearance)
}

func TestAggregate_SkipsUnusableNames(t *testing.T) {
	res, err := Aggregate([]Record{
		{Issue: 1, Antagonists: []string{"", "   ", "(cameo only)", "Scorpion"}},
	})

	require.NoError(t, err)
	require.Len(t, res.Registry, 1)
	assert.Equal(t, "Scorpion", res.Registry[0].Name)
}

func TestAggregate_InvalidIssueKey(t *testing.T) {
	_, err := Aggregate([]Record{
		{Issue: 1, Antagonists: []string{"A"}},
		{Issue: 0, Antagonists: []string{"B"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAggregate_EmptyInput(t *testing.T) {
	res, err := Aggregate(nil)

	require.NoError(t, err)
	assert.Empty(t, res.Registry)
	assert.Empty(t, res.Timeline)
	assert.Equal(t, 0, res.Summary.TotalVillains)
	assert.Nil(t, res.Summary.MostFrequent)
	assert.Zero(t, res.Summary.AverageFrequency)
}

func TestAggregate_Idempotent(t *testing.T) {
	records := []Record{
		{Issue: 1, Antagonists: []string{"Green Goblin", "Vulture"}},
		{Issue: 2, Antagonists: []string{"Vulture (Adrian Toomes)"}},
		{Issue: 3, Antagonists: nil},
	}

	first, err := Aggregate(records)
	require.NoError(t, err)

	second, err := Aggregate(records)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_FrequencyMatchesAppearances(t *testing.T) {
	res, err := Aggregate([]Record{
		{Issue: 1, Antagonists: []string{"A", "B"}},
		{Issue: 2, Antagonists: []string{"B"}},
		{Issue: 4, Antagonists: []string{"A", "B", "C"}},
	})

	require.NoError(t, err)
	for _, v := range res.Registry {
		assert.Equal(t, len(v.Appearances), v.Frequency(), v.Name)
	}
}
