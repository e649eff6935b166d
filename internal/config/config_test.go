package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultDefenderYAML)
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}

	if cfg != DefaultDefenderConfig() {
		t.Errorf("embedded YAML differs from DefaultDefenderConfig():\n got %+v\nwant %+v", cfg, DefaultDefenderConfig())
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawn:\n  max_active: 7\ntiming:\n  shield_duration: 12s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadDefender(path)
	if err != nil {
		t.Fatalf("LoadDefender() failed: %v", err)
	}

	if cfg.Spawn.MaxActive != 7 {
		t.Errorf("MaxActive = %d, expected 7", cfg.Spawn.MaxActive)
	}
	if cfg.Timing.ShieldDuration != 12*time.Second {
		t.Errorf("ShieldDuration = %v, expected 12s", cfg.Timing.ShieldDuration)
	}
	// Untouched sections keep their defaults
	if cfg.Nodes.ConnectThreshold != 200 {
		t.Errorf("ConnectThreshold = %f, expected default 200", cfg.Nodes.ConnectThreshold)
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	cfg, err := LoadDefender(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadDefender() should fail for a missing custom file")
	}
	if cfg.Arena.Width != 600 {
		t.Error("LoadDefender() should still return usable defaults on error")
	}
}

func TestLoadCustomInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("arena: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadDefender(path); err == nil {
		t.Error("LoadDefender() should fail on invalid YAML")
	}
}

func TestSanitize(t *testing.T) {
	cfg := DefaultDefenderConfig()
	cfg.Arena.Width = 0
	cfg.Anomaly.SlowFactor = 3
	cfg.Spawn.MaxActive = -1
	cfg.Audio.Volume = 1.5
	cfg.Campaign.FinalLevel = -3
	cfg.Sanitize()

	def := DefaultDefenderConfig()
	if cfg.Arena.Width != def.Arena.Width {
		t.Errorf("Width = %f, expected %f", cfg.Arena.Width, def.Arena.Width)
	}
	if cfg.Anomaly.SlowFactor != def.Anomaly.SlowFactor {
		t.Errorf("SlowFactor = %f, expected %f", cfg.Anomaly.SlowFactor, def.Anomaly.SlowFactor)
	}
	if cfg.Spawn.MaxActive != def.Spawn.MaxActive {
		t.Errorf("MaxActive = %d, expected %d", cfg.Spawn.MaxActive, def.Spawn.MaxActive)
	}
	if cfg.Audio.Volume != def.Audio.Volume {
		t.Errorf("Volume = %f, expected %f", cfg.Audio.Volume, def.Audio.Volume)
	}
	if cfg.Campaign.FinalLevel != 0 {
		t.Errorf("FinalLevel = %d, expected 0", cfg.Campaign.FinalLevel)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		speedScale float64
		maxActive  int
		damage     int
	}{
		{DifficultyEasy, 1.0, 10, 5},
		{DifficultyNormal, 3.0, 15, 10},
		{DifficultyHard, 6.0, 20, 15},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDefenderConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Anomaly.SpeedScale != tc.speedScale {
				t.Errorf("SpeedScale = %f, expected %f", cfg.Anomaly.SpeedScale, tc.speedScale)
			}
			if cfg.Spawn.MaxActive != tc.maxActive {
				t.Errorf("MaxActive = %d, expected %d", cfg.Spawn.MaxActive, tc.maxActive)
			}
			if cfg.Energy.CoreDamage != tc.damage {
				t.Errorf("CoreDamage = %d, expected %d", cfg.Energy.CoreDamage, tc.damage)
			}
		})
	}

	// Empty preset is a no-op
	cfg := DefaultDefenderConfig()
	ApplyPreset(&cfg, "")
	if cfg != DefaultDefenderConfig() {
		t.Error("ApplyPreset(\"\") should not modify the config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(\"hard\") should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("ParsePreset should return empty for unknown presets")
	}
}
