package defender

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/quantum-defender/internal/core"
)

// Anomaly is a hostile entity drifting toward the core.
type Anomaly struct {
	ID     string
	Pos    core.Vec2
	Type   int     // 1..3, selects glyph and color
	Speed  float64 // Base speed in world units per tick
	Target core.Vec2
}

// Edge identifies the arena side an anomaly enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// spawnAnomaly creates one anomaly at a random arena edge.
// It is a no-op outside of play or when the active limit is reached.
func (g *Game) spawnAnomaly() {
	if g.phase != PhasePlaying {
		return
	}
	if len(g.anomalies) >= g.cfg.Spawn.MaxActive {
		return
	}

	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height
	margin := g.cfg.Arena.EdgeMargin

	var pos core.Vec2
	switch Edge(g.rng.Intn(4)) {
	case EdgeTop:
		pos = core.Vec2{X: g.rng.Float64() * w, Y: -margin}
	case EdgeRight:
		pos = core.Vec2{X: w + margin, Y: g.rng.Float64() * h}
	case EdgeBottom:
		pos = core.Vec2{X: g.rng.Float64() * w, Y: h + margin}
	default:
		pos = core.Vec2{X: -margin, Y: g.rng.Float64() * h}
	}

	a := &Anomaly{
		ID:     g.newAnomalyID(),
		Pos:    pos,
		Type:   g.rng.Intn(3) + 1,
		Speed:  g.cfg.Anomaly.BaseSpeed + g.rng.Float64()*g.cfg.Anomaly.SpeedJitter,
		Target: g.corePos(),
	}
	g.anomalies = append(g.anomalies, a)
}

// newAnomalyID draws a UUID from the game RNG so seeded runs replay exactly.
func (g *Game) newAnomalyID() string {
	g.spawned++
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return fmt.Sprintf("anomaly-%d", g.spawned)
	}
	return id.String()
}

// anomalyIndex returns the slice index of the anomaly with the given ID, or -1.
func (g *Game) anomalyIndex(id string) int {
	for i, a := range g.anomalies {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// Anomalies returns a copy of the active anomalies in spawn order.
func (g *Game) Anomalies() []Anomaly {
	out := make([]Anomaly, len(g.anomalies))
	for i, a := range g.anomalies {
		out[i] = *a
	}
	return out
}
