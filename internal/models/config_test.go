package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `{
  "seed": 7,
  "scale": 2.0,
  "excluded_keywords": ["pepper", "cilantro"],
  "category_overrides": {"tofu": "produce"},
  "history_exclusion_days": 21,
  "default_selection": {"chicken": 2},
  "preferred_days": ["sunday"]
}`

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Seed)
	assert.Equal(t, 2.0, cfg.Scale)
	assert.Equal(t, []string{"pepper", "cilantro"}, cfg.ExcludedKeywords)
	assert.Equal(t, "produce", cfg.CategoryOverrides["tofu"])
	assert.Equal(t, 21, cfg.HistoryExclusionDays)
	assert.Equal(t, 2, cfg.DefaultSelection["chicken"])
	assert.Equal(t, []string{"sunday"}, cfg.PreferredDays)

	// defaults fill unset fields
	assert.Equal(t, "monday", cfg.WeekStartDay)
	assert.True(t, cfg.AutoAssignDays)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
