package config

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the loaded file values untouched.
func ApplyPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Anomaly.SpeedScale = 1.0
		cfg.Spawn.MaxActive = 10
		cfg.Energy.CoreDamage = 5
	case DifficultyNormal:
		cfg.Anomaly.SpeedScale = 3.0
		cfg.Spawn.MaxActive = 15
		cfg.Energy.CoreDamage = 10
	case DifficultyHard:
		cfg.Anomaly.SpeedScale = 6.0
		cfg.Spawn.MaxActive = 20
		cfg.Energy.CoreDamage = 15
	}
}
