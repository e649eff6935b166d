package defender

import "github.com/vovakirdan/quantum-defender/internal/core"

const scorePerKill = 10

// moveAnomalies advances every anomaly one step toward its target and
// resolves core hits. The hit test uses the distance measured before the step.
func (g *Game) moveAnomalies() {
	speedMul := g.cfg.Anomaly.SpeedScale
	if g.timeSlowed {
		speedMul *= g.cfg.Anomaly.SlowFactor
	}

	// Iterate over a snapshot: core hits remove entries.
	active := append([]*Anomaly(nil), g.anomalies...)
	for _, a := range active {
		d := a.Target.Sub(a.Pos)
		dist := d.Len()

		if dist > 0 {
			a.Pos = a.Pos.Add(d.Scale(a.Speed * speedMul / dist))
		}

		if dist < g.cfg.Arena.CoreRadius && !g.shieldActive {
			g.hitCore(a.ID)
			if g.phase != PhasePlaying {
				return
			}
		}
	}
}

// hitCore removes the anomaly and drains energy. Energy reaching zero ends the game.
func (g *Game) hitCore(id string) {
	idx := g.anomalyIndex(id)
	if idx < 0 {
		return
	}
	a := g.anomalies[idx]
	g.removeAnomalyAt(idx)

	g.energy -= g.cfg.Energy.CoreDamage
	if g.energy < 0 {
		g.energy = 0
	}

	g.emit(Event{Kind: EventCoreHit, Pos: a.Pos})
	g.emit(Event{Kind: EventSound, Sound: SoundExplosion})

	if g.energy == 0 {
		g.endGame(false)
	}
}

// checkConnectionCollisions destroys every anomaly within the hit threshold
// of a connection and flashes that connection.
func (g *Game) checkConnectionCollisions() {
	conns := g.graph.Connections()
	if len(conns) == 0 {
		return
	}

	active := append([]*Anomaly(nil), g.anomalies...)
	for _, a := range active {
		for _, c := range conns {
			from, to := g.graph.Segment(c)
			if core.PointSegmentDistance(a.Pos, from, to) >= g.cfg.Nodes.HitThreshold {
				continue
			}
			if g.destroyAnomaly(a.ID) {
				g.flashConnection(c)
			}
			break
		}
	}
}

// destroyAnomaly removes an anomaly and awards points. It is idempotent:
// an unknown or already destroyed ID changes nothing and returns false.
func (g *Game) destroyAnomaly(id string) bool {
	idx := g.anomalyIndex(id)
	if idx < 0 {
		return false
	}
	a := g.anomalies[idx]
	g.removeAnomalyAt(idx)

	g.destroyed++
	g.score += scorePerKill

	g.emit(Event{Kind: EventExplosion, Pos: a.Pos, AnomalyType: a.Type})
	g.emit(Event{Kind: EventSound, Sound: SoundExplosion})
	return true
}

func (g *Game) removeAnomalyAt(idx int) {
	copy(g.anomalies[idx:], g.anomalies[idx+1:])
	g.anomalies[len(g.anomalies)-1] = nil
	g.anomalies = g.anomalies[:len(g.anomalies)-1]
}

// flashConnection highlights a connection until the flash duration elapses.
func (g *Game) flashConnection(c Connection) {
	key := c.Key()
	until := g.sched.Now() + g.cfg.Timing.FlashDuration
	g.flashes[key] = until

	g.emit(Event{Kind: EventConnectionFlash, From: c.From, To: c.To})

	g.sched.After(g.cfg.Timing.FlashDuration, func() {
		if g.flashes[key] <= g.sched.Now() {
			delete(g.flashes, key)
		}
	})
}

// isFlashing reports whether the connection is currently highlighted.
func (g *Game) isFlashing(c Connection) bool {
	_, ok := g.flashes[c.Key()]
	return ok
}
