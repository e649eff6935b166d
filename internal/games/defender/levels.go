// Package defender implements Quantum Defender, a reactor-defense game where
// the player drags defense nodes so that the connections between them
// intercept anomalies drifting toward the core.
package defender

import (
	"time"

	"github.com/vovakirdan/quantum-defender/internal/core"
)

// LevelConfig holds the difficulty parameters derived from a level number.
type LevelConfig struct {
	AnomalyCount int           // Anomalies to destroy to clear the level
	AnomalySpeed float64       // Nominal anomaly speed, capped at 2.5
	SpawnRate    time.Duration // Spawn interval, floored at 500ms
	TimeLimit    int           // Seconds on the clock
}

// Theme is the color pair used to draw a level.
type Theme struct {
	Primary   string // Hex color, as used by web front-ends
	Secondary string
	Color     core.Color // Closest terminal color to Primary
}

const (
	maxAnomalySpeed = 2.5
	minSpawnRate    = 500 * time.Millisecond
)

var themes = [...]Theme{
	{Primary: "#00aaff", Secondary: "#0066aa", Color: core.ColorBrightBlue},
	{Primary: "#aa00ff", Secondary: "#6600aa", Color: core.ColorMagenta},
	{Primary: "#ffaa00", Secondary: "#aa6600", Color: core.ColorOrange},
	{Primary: "#00ffaa", Secondary: "#00aa66", Color: core.ColorBrightGreen},
	{Primary: "#ff0066", Secondary: "#aa0044", Color: core.ColorPink},
}

// LevelConfigFor returns the difficulty parameters for level n.
// Levels below 1 are treated as level 1.
func LevelConfigFor(n int) LevelConfig {
	if n < 1 {
		n = 1
	}

	speed := 0.5 + 0.1*float64(n)
	if speed > maxAnomalySpeed {
		speed = maxAnomalySpeed
	}

	spawn := 2000*time.Millisecond - time.Duration(n)*150*time.Millisecond
	if spawn < minSpawnRate {
		spawn = minSpawnRate
	}

	return LevelConfig{
		AnomalyCount: 10 + 2*n,
		AnomalySpeed: speed,
		SpawnRate:    spawn,
		TimeLimit:    60 + 5*n,
	}
}

// ThemeFor returns the color theme for level n, cycling through five palettes.
func ThemeFor(n int) Theme {
	if n < 1 {
		n = 1
	}
	return themes[(n-1)%len(themes)]
}
