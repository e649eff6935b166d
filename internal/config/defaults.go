package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the built-in configuration. It mirrors
// defaults/defender.yaml and is used when the embedded file cannot be parsed.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		Arena: ArenaConfig{
			Width:      600,
			Height:     450,
			CoreRadius: 90,
			EdgeMargin: 40,
		},
		Nodes: NodesConfig{
			ConnectThreshold: 200,
			HitThreshold:     25,
		},
		Spawn: SpawnConfig{
			InitialInterval: 2 * time.Second,
			MaxActive:       15,
			ScaleWithLevel:  true,
		},
		Anomaly: AnomalyConfig{
			BaseSpeed:   0.5,
			SpeedJitter: 0.5,
			SpeedScale:  1.0,
			SlowFactor:  0.3,
		},
		Timing: TimingConfig{
			TickInterval:   time.Second,
			SlowDuration:   5 * time.Second,
			ShieldDuration: 8 * time.Second,
			BannerDuration: 2 * time.Second,
			FlashDuration:  300 * time.Millisecond,
			HelpDelay:      time.Second,
		},
		Powers: PowersConfig{
			MaxUses: 3,
		},
		Energy: EnergyConfig{
			Max:         100,
			CoreDamage:  10,
			LevelRefill: 30,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.7,
		},
		Campaign: CampaignConfig{
			FinalLevel: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDefenderYAML
}
