package defender

import "github.com/vovakirdan/quantum-defender/internal/core"

// Power identifies a limited-use ability.
type Power int

const (
	PowerSlowTime Power = iota
	PowerShield
	PowerBlast
)

// String returns the HUD label of the power.
func (p Power) String() string {
	switch p {
	case PowerSlowTime:
		return "SLOW"
	case PowerShield:
		return "SHIELD"
	case PowerBlast:
		return "BLAST"
	default:
		return "?"
	}
}

// PowerUses holds the remaining charges of each power, each in [0, max_uses].
type PowerUses struct {
	SlowTime int
	Shield   int
	Blast    int
}

func (p *PowerUses) get(pw Power) *int {
	switch pw {
	case PowerSlowTime:
		return &p.SlowTime
	case PowerShield:
		return &p.Shield
	default:
		return &p.Blast
	}
}

// Count returns the remaining charges of a power.
func (p PowerUses) Count(pw Power) int {
	return *p.get(pw)
}

// refill adds one charge to every power, capped at max.
func (p *PowerUses) refill(max int) {
	p.SlowTime = core.Min(max, p.SlowTime+1)
	p.Shield = core.Min(max, p.Shield+1)
	p.Blast = core.Min(max, p.Blast+1)
}

func fullPowers(max int) PowerUses {
	return PowerUses{SlowTime: max, Shield: max, Blast: max}
}

// consume spends one charge. It returns false outside of play or with no charges left.
func (g *Game) consume(pw Power) bool {
	if g.phase != PhasePlaying {
		return false
	}
	n := g.powers.get(pw)
	if *n <= 0 {
		return false
	}
	*n--
	return true
}

// ActivateSlowTime slows every anomaly for the slow duration.
func (g *Game) ActivateSlowTime() {
	if !g.consume(PowerSlowTime) {
		return
	}
	g.timeSlowed = true
	g.emit(Event{Kind: EventPowerUp, Pos: g.corePos(), Color: core.ColorCyan})
	g.emit(Event{Kind: EventSound, Sound: SoundPowerUp})

	// Expiry is never cancelled, even if the game ends first.
	g.sched.After(g.cfg.Timing.SlowDuration, func() {
		g.timeSlowed = false
	})
}

// ActivateShield makes the core immune to hits for the shield duration.
func (g *Game) ActivateShield() {
	if !g.consume(PowerShield) {
		return
	}
	g.shieldActive = true
	g.emit(Event{Kind: EventPowerUp, Pos: g.corePos(), Color: core.ColorBrightBlue})
	g.emit(Event{Kind: EventSound, Sound: SoundPowerUp})

	g.sched.After(g.cfg.Timing.ShieldDuration, func() {
		g.shieldActive = false
	})
}

// ActivateBlast destroys every active anomaly through the regular destroy path.
func (g *Game) ActivateBlast() {
	if !g.consume(PowerBlast) {
		return
	}

	ids := make([]string, len(g.anomalies))
	for i, a := range g.anomalies {
		ids[i] = a.ID
	}
	for _, id := range ids {
		g.destroyAnomaly(id)
	}

	g.emit(Event{Kind: EventPowerUp, Pos: g.corePos(), Color: core.ColorOrange})
	g.emit(Event{Kind: EventSound, Sound: SoundPowerUp})
	g.showMessage("QUANTUM BLAST!", core.ColorOrange)
}
