package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chronicle.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[world]
seed = 77

[simulation]
max_color_passes = 1

[logging]
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(77), cfg.World.Seed)
	assert.Equal(t, "data/yaml/rheged.yaml", cfg.World.Scenario)
	assert.Equal(t, 1, cfg.Simulation.MaxColorPasses)
	assert.Equal(t, "bonheddwr", cfg.Simulation.RecruitPrototype)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[world\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[simulation]\nmax_color_passes = -2\n"))
	assert.ErrorContains(t, err, "max_color_passes")

	_, err = Load(writeConfig(t, "[view]\nmin_x = 10\nmax_x = 0\n"))
	assert.ErrorContains(t, err, "viewport")
}

func TestLoad_ShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config", "chronicle.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().World.Scenario, cfg.World.Scenario)
}
