package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.Volume)
	assert.Equal(t, 150*time.Millisecond, cfg.Input.HoldWindow)
	assert.Empty(t, cfg.Input.Bindings)
	assert.False(t, cfg.Render.ShowStats)
	assert.Equal(t, time.Second/60, cfg.TickInterval())
}

func TestLoad_WithJSONFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := writeFile(t, "junie.json", `{
		"logLevel": "debug",
		"seed": 42,
		"audio": { "enabled": false },
		"input": { "holdWindow": "200ms", "bindings": { "fire": ["f"] } },
		"render": { "showStats": true }
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.Volume, "unset keys keep defaults")
	assert.Equal(t, 200*time.Millisecond, cfg.Input.HoldWindow)
	assert.Equal(t, []string{"f"}, cfg.Input.Bindings["fire"])
	assert.True(t, cfg.Render.ShowStats)
}

func TestLoad_WithYAMLFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := writeFile(t, "junie.yaml", "tickRate: 30\naudio:\n  volume: 0.25\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.Equal(t, time.Second/30, cfg.TickInterval())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	_, err := Load("/nonexistent/junie.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("JUNIE_LOGLEVEL", "warn")
	t.Setenv("JUNIE_AUDIO_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"Zero tick rate", `{"tickRate": 0}`, "tickRate"},
		{"Loud volume", `{"audio": {"volume": 1.5}}`, "audio.volume"},
		{"Negative hold", `{"input": {"holdWindow": "-1s"}}`, "input.holdWindow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(viper.Reset)

			_, err := Load(writeFile(t, "junie.json", tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
