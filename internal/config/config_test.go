package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMerged_FlagsOverrideDefaults(t *testing.T) {
	cfg, used, err := LoadMerged(Options{
		IgnoreConfig: true,
		Series:       "Spectacular Spider-Man",
		FirstIssue:   10,
		LastIssue:    20,
		DelayMs:      250,
		Output:       "out.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "(ignored config)", used)

	assert.Equal(t, "Spectacular Spider-Man", cfg.Series)
	assert.Equal(t, 10, cfg.FirstIssue)
	assert.Equal(t, 20, cfg.LastIssue)
	assert.Equal(t, 250, cfg.DelayMs)
	assert.Equal(t, "out.json", cfg.Output)

	// Untouched fields keep their defaults.
	assert.Equal(t, "https://marvel.fandom.com/wiki/", cfg.BaseURL)
	assert.Equal(t, "villains-chart.json", cfg.ChartOutput)
}

func TestLoadMerged_NormalizesEmptyRange(t *testing.T) {
	cfg, _, err := LoadMerged(Options{
		IgnoreConfig: true,
		FirstIssue:   7,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.FirstIssue)
	assert.GreaterOrEqual(t, cfg.LastIssue, cfg.FirstIssue)
}

func TestSaveAndLoadYAML(t *testing.T) {
	path := t.TempDir() + "/profile.yaml"

	cfg := DefaultConfig()
	cfg.Series = "Web of Spider-Man"
	cfg.BypassCF = true

	require.NoError(t, SaveYAML(cfg, path))

	loaded, err := loadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
