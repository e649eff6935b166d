package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "defender.yaml"

// LoadDefender loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/defender.yaml -> ./configs/defender.yaml -> embedded default.
// Files are applied on top of the defaults, so partial files are fine.
func LoadDefender(customPath string) (DefenderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDefenderConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultDefenderConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDefenderYAML)
	if err != nil {
		return DefaultDefenderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and sanitizes the result.
func parse(data []byte) (DefenderConfig, error) {
	cfg := DefaultDefenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Sanitize()
	return cfg, nil
}

// Sanitize replaces values that would break the simulation with defaults.
func (c *DefenderConfig) Sanitize() {
	def := DefaultDefenderConfig()

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		c.Arena.Width, c.Arena.Height = def.Arena.Width, def.Arena.Height
	}
	if c.Arena.CoreRadius < 0 {
		c.Arena.CoreRadius = def.Arena.CoreRadius
	}
	if c.Nodes.ConnectThreshold <= 0 {
		c.Nodes.ConnectThreshold = def.Nodes.ConnectThreshold
	}
	if c.Nodes.HitThreshold <= 0 {
		c.Nodes.HitThreshold = def.Nodes.HitThreshold
	}
	if c.Spawn.InitialInterval <= 0 {
		c.Spawn.InitialInterval = def.Spawn.InitialInterval
	}
	if c.Spawn.MaxActive <= 0 {
		c.Spawn.MaxActive = def.Spawn.MaxActive
	}
	if c.Anomaly.SpeedScale <= 0 {
		c.Anomaly.SpeedScale = def.Anomaly.SpeedScale
	}
	if c.Anomaly.SlowFactor <= 0 || c.Anomaly.SlowFactor > 1 {
		c.Anomaly.SlowFactor = def.Anomaly.SlowFactor
	}
	if c.Timing.TickInterval <= 0 {
		c.Timing.TickInterval = def.Timing.TickInterval
	}
	if c.Powers.MaxUses < 0 {
		c.Powers.MaxUses = def.Powers.MaxUses
	}
	if c.Energy.Max <= 0 {
		c.Energy.Max = def.Energy.Max
	}
	if c.Campaign.FinalLevel < 0 {
		c.Campaign.FinalLevel = def.Campaign.FinalLevel
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		c.Audio.Volume = def.Audio.Volume
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
