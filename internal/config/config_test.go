package config

import (
	"testing"

	"evident/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"EVIDENT_MAX_LEVELS_PER_CATEGORY", "EVIDENT_MIN_COUNT_PER_LEVEL", "EVIDENT_N_JOBS",
		"EVIDENT_DROP_RARE_LEVELS", "PORT", "GIN_MODE", "DATABASE_URL", "METADATA_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Analysis.MaxLevelsPerCategory)
	assert.Equal(t, 3, cfg.Analysis.MinCountPerLevel)
	assert.Equal(t, 1, cfg.Analysis.NJobs)
	assert.False(t, cfg.Analysis.DropRareLevels)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.False(t, cfg.Database.Enabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("EVIDENT_MAX_LEVELS_PER_CATEGORY", "8")
	t.Setenv("EVIDENT_MIN_COUNT_PER_LEVEL", "4")
	t.Setenv("EVIDENT_N_JOBS", "-1")
	t.Setenv("EVIDENT_DROP_RARE_LEVELS", "true")
	t.Setenv("METADATA_FILE", "metadata.tsv")
	t.Setenv("INDIVIDUAL_ID_COLUMN", "subject")
	t.Setenv("DATABASE_URL", "postgres://localhost/evident?sslmode=disable")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Analysis.MaxLevelsPerCategory)
	assert.Equal(t, 4, cfg.Analysis.MinCountPerLevel)
	assert.Equal(t, -1, cfg.Analysis.NJobs)
	assert.True(t, cfg.Analysis.DropRareLevels)
	assert.Equal(t, "metadata.tsv", cfg.Data.MetadataFile)
	assert.Equal(t, "subject", cfg.Data.IndividualIDColumn)
	assert.True(t, cfg.Database.Enabled())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"EVIDENT_MAX_LEVELS_PER_CATEGORY", "1"},
		{"EVIDENT_MIN_COUNT_PER_LEVEL", "one"},
		{"EVIDENT_N_JOBS", "0"},
		{"EVIDENT_DROP_RARE_LEVELS", "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
