// Package config loads front-end settings through viper
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AudioConfig holds speaker settings
type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// InputConfig holds key handling settings
type InputConfig struct {
	HoldWindow time.Duration       `json:"holdWindow" mapstructure:"holdWindow"`
	Bindings   map[string][]string `json:"bindings" mapstructure:"bindings"` // action -> keys, merged over defaults
}

// RenderConfig holds display settings
type RenderConfig struct {
	ShowStats bool `json:"showStats" mapstructure:"showStats"`
}

// Config is the typed application configuration
type Config struct {
	LogLevel string       `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string       `json:"logFile" mapstructure:"logFile"`
	TickRate int          `json:"tickRate" mapstructure:"tickRate"`
	Seed     uint64       `json:"seed" mapstructure:"seed"` // 0 seeds from the clock
	Audio    AudioConfig  `json:"audio" mapstructure:"audio"`
	Input    InputConfig  `json:"input" mapstructure:"input"`
	Render   RenderConfig `json:"render" mapstructure:"render"`
}

// EnvPrefix prefixes environment overrides, e.g. JUNIE_AUDIO_ENABLED=false
const EnvPrefix = "JUNIE"

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")
	viper.SetDefault("tickRate", 60)
	viper.SetDefault("seed", 0)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.5)

	viper.SetDefault("input.holdWindow", "150ms")
	viper.SetDefault("input.bindings", map[string][]string{})

	viper.SetDefault("render.showStats", false)
}

// Load sets defaults, applies environment overrides and reads path when given
// The file type follows the extension (json, yaml, toml)
func Load(path string) (Config, error) {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the front-end cannot run with
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("invalid tickRate %d: must be in 1..1000", c.TickRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("invalid audio.volume %.2f: must be in 0..1", c.Audio.Volume)
	}
	if c.Input.HoldWindow <= 0 {
		return fmt.Errorf("invalid input.holdWindow %s: must be positive", c.Input.HoldWindow)
	}
	return nil
}

// TickInterval returns the scheduler period for the configured rate
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
