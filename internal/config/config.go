// Package config provides YAML-based game configuration loading and
// difficulty presets for Quantum Defender.
package config

import "time"

// DefenderConfig contains all configuration for the reactor-defense game.
type DefenderConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Nodes    NodesConfig    `yaml:"nodes"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Anomaly  AnomalyConfig  `yaml:"anomaly"`
	Timing   TimingConfig   `yaml:"timing"`
	Powers   PowersConfig   `yaml:"powers"`
	Energy   EnergyConfig   `yaml:"energy"`
	Audio    AudioConfig    `yaml:"audio"`
	Campaign CampaignConfig `yaml:"campaign"`
}

// ArenaConfig defines the world-space play area. The core sits at its center.
type ArenaConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CoreRadius float64 `yaml:"core_radius"` // Anomalies closer than this hit the core
	EdgeMargin float64 `yaml:"edge_margin"` // Spawn distance outside the arena edge
}

// NodesConfig defines the defense node graph.
type NodesConfig struct {
	ConnectThreshold float64 `yaml:"connect_threshold"` // Max node distance for a connection
	HitThreshold     float64 `yaml:"hit_threshold"`     // Anomaly-to-connection intercept distance
}

// SpawnConfig defines anomaly spawning.
type SpawnConfig struct {
	InitialInterval time.Duration `yaml:"initial_interval"`
	MaxActive       int           `yaml:"max_active"`
	ScaleWithLevel  bool          `yaml:"scale_with_level"` // Re-arm with the level spawn rate after each completion
}

// AnomalyConfig defines anomaly motion.
type AnomalyConfig struct {
	BaseSpeed   float64 `yaml:"base_speed"`   // Minimum speed in units per tick
	SpeedJitter float64 `yaml:"speed_jitter"` // Uniform random extra speed
	SpeedScale  float64 `yaml:"speed_scale"`  // Global multiplier, 1.0 = base pace
	SlowFactor  float64 `yaml:"slow_factor"`  // Speed multiplier while time is slowed
}

// TimingConfig defines timer intervals and effect durations.
type TimingConfig struct {
	TickInterval   time.Duration `yaml:"tick_interval"`
	SlowDuration   time.Duration `yaml:"slow_duration"`
	ShieldDuration time.Duration `yaml:"shield_duration"`
	BannerDuration time.Duration `yaml:"banner_duration"`
	FlashDuration  time.Duration `yaml:"flash_duration"`
	HelpDelay      time.Duration `yaml:"help_delay"` // Instructions pop up this long after launch; 0 disables
}

// PowersConfig defines power-up charges.
type PowersConfig struct {
	MaxUses int `yaml:"max_uses"`
}

// EnergyConfig defines core energy rules.
type EnergyConfig struct {
	Max         int `yaml:"max"`
	CoreDamage  int `yaml:"core_damage"`
	LevelRefill int `yaml:"level_refill"`
}

// AudioConfig defines the master volume and whether audio starts enabled.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// CampaignConfig bounds the mission. A zero final level plays endlessly
// until the core falls or the clock runs out.
type CampaignConfig struct {
	FinalLevel int `yaml:"final_level"` // Clearing this level ends the game in success
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
