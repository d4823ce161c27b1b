package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		LogMode:       "dev",
		LevelCurve:    "flat",
		LevelBase:     100,
		LevelFactor:   1.5,
		PlaybackSpeed: 1,
		UserID:        "alex",
		SnapshotKeep:  5,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("USER", "alex")
	for _, k := range []string{
		"EDUSMART_DB", "EDUSMART_LOG_FILE", "EDUSMART_LEVEL_CURVE", "EDUSMART_LEVEL_BASE",
		"EDUSMART_LEVEL_FACTOR", "EDUSMART_CATALOG", "EDUSMART_PLAYBACK_SPEED", "EDUSMART_USER",
		"EDUSMART_SNAPSHOT_KEEP", "EDUSMART_LOG_MODE",
	} {
		t.Setenv(k, "")
	}

	cfg := config.Load()

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Equal(t, "flat", cfg.LevelCurve)
	assert.Equal(t, 100, cfg.LevelBase)
	assert.Equal(t, 1.5, cfg.LevelFactor)
	assert.Equal(t, 1.0, cfg.PlaybackSpeed)
	assert.Equal(t, "alex", cfg.UserID)
	assert.Equal(t, 5, cfg.SnapshotKeep)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("EDUSMART_LEVEL_CURVE", "geometric")
	t.Setenv("EDUSMART_LEVEL_BASE", "250")
	t.Setenv("EDUSMART_LEVEL_FACTOR", "2")
	t.Setenv("EDUSMART_PLAYBACK_SPEED", "30")
	t.Setenv("EDUSMART_USER", "sam")
	t.Setenv("EDUSMART_CATALOG", "/tmp/catalog.json")

	cfg := config.Load()

	assert.Equal(t, "geometric", cfg.LevelCurve)
	assert.Equal(t, 250, cfg.LevelBase)
	assert.Equal(t, 2.0, cfg.LevelFactor)
	assert.Equal(t, 30.0, cfg.PlaybackSpeed)
	assert.Equal(t, "sam", cfg.UserID)
	assert.Equal(t, "/tmp/catalog.json", cfg.CatalogPath)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("EDUSMART_LEVEL_BASE", "lots")
	t.Setenv("EDUSMART_PLAYBACK_SPEED", "fast")

	cfg := config.Load()

	assert.Equal(t, 100, cfg.LevelBase)
	assert.Equal(t, 1.0, cfg.PlaybackSpeed)
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantMsg string
	}{
		{"bad curve", func(c *config.Config) { c.LevelCurve = "cubic" }, "EDUSMART_LEVEL_CURVE"},
		{"zero base", func(c *config.Config) { c.LevelBase = 0 }, "EDUSMART_LEVEL_BASE"},
		{"shrinking factor", func(c *config.Config) { c.LevelFactor = 0.5 }, "EDUSMART_LEVEL_FACTOR"},
		{"zero speed", func(c *config.Config) { c.PlaybackSpeed = 0 }, "EDUSMART_PLAYBACK_SPEED"},
		{"empty user", func(c *config.Config) { c.UserID = "  " }, "EDUSMART_USER cannot be empty"},
		{"zero keep", func(c *config.Config) { c.SnapshotKeep = 0 }, "EDUSMART_SNAPSHOT_KEEP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	cfg := validConfig()
	cfg.LevelBase = -1
	cfg.PlaybackSpeed = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EDUSMART_LEVEL_BASE")
	assert.Contains(t, err.Error(), "EDUSMART_PLAYBACK_SPEED")
}
