package defender

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/quantum-defender/internal/core"
)

// ParticleKind selects how a particle animates and renders.
type ParticleKind int

const (
	ParticleSpark     ParticleKind = iota // Explosion debris
	ParticleShockwave                     // Expanding ring around a core hit
	ParticleOrbit                         // Power-up ring member
)

// Particle is a purely cosmetic effect element in world units.
type Particle struct {
	Kind    ParticleKind
	Origin  core.Vec2
	Pos     core.Vec2
	Vel     core.Vec2
	Angle   float64 // Orbit direction in radians
	Radius  float64 // Shockwave and orbit radius
	Opacity float64 // 1.0 fresh, removed at 0
	Color   core.Color
}

const (
	explosionCount = 15
	sparkFade      = 0.03
	shockwaveGrow  = 8
	shockwaveFade  = 0.05
	orbitCount     = 8
	orbitGrow      = 3
	orbitMaxRadius = 100
)

// Explosion color pairs by anomaly type.
var sparkColors = [3][2]core.Color{
	{core.ColorPink, core.ColorOrange},
	{core.ColorOrange, core.ColorYellow},
	{core.ColorBrightGreen, core.ColorBrightBlue},
}

// ParticleSystem turns game events into short-lived particles.
// It has its own RNG so effects never change the simulation.
type ParticleSystem struct {
	rng       *rand.Rand
	particles []Particle
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(seed int64) *ParticleSystem {
	return &ParticleSystem{rng: rand.New(rand.NewSource(seed))} //#nosec G404 -- cosmetic randomness
}

// Emit implements EventSink.
func (ps *ParticleSystem) Emit(e Event) {
	switch e.Kind {
	case EventExplosion:
		ps.explosion(e.Pos, e.AnomalyType)
	case EventCoreHit:
		ps.particles = append(ps.particles, Particle{
			Kind:    ParticleShockwave,
			Origin:  e.Pos,
			Pos:     e.Pos,
			Radius:  5,
			Opacity: 1,
			Color:   core.ColorBrightRed,
		})
	case EventPowerUp:
		for i := 0; i < orbitCount; i++ {
			ps.particles = append(ps.particles, Particle{
				Kind:    ParticleOrbit,
				Origin:  e.Pos,
				Pos:     e.Pos,
				Angle:   float64(i) / orbitCount * 2 * math.Pi,
				Radius:  5,
				Opacity: 1,
				Color:   e.Color,
			})
		}
	}
}

func (ps *ParticleSystem) explosion(at core.Vec2, anomalyType int) {
	colors := sparkColors[0]
	if anomalyType >= 1 && anomalyType <= len(sparkColors) {
		colors = sparkColors[anomalyType-1]
	}

	for i := 0; i < explosionCount; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 2 + ps.rng.Float64()*3
		ps.particles = append(ps.particles, Particle{
			Kind:    ParticleSpark,
			Origin:  at,
			Pos:     at,
			Vel:     core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Opacity: 1,
			Color:   colors[ps.rng.Intn(2)],
		})
	}
}

// Update advances every particle by one frame and drops faded ones.
func (ps *ParticleSystem) Update() {
	kept := ps.particles[:0]
	for _, p := range ps.particles {
		switch p.Kind {
		case ParticleSpark:
			p.Pos = p.Pos.Add(p.Vel)
			p.Opacity -= sparkFade
		case ParticleShockwave:
			p.Radius += shockwaveGrow
			p.Opacity -= shockwaveFade
		case ParticleOrbit:
			p.Radius += orbitGrow
			p.Pos = core.Vec2{
				X: p.Origin.X + math.Cos(p.Angle)*p.Radius,
				Y: p.Origin.Y + math.Sin(p.Angle)*p.Radius,
			}
			p.Opacity = 1 - p.Radius/orbitMaxRadius
		}
		if p.Opacity > 0 {
			kept = append(kept, p)
		}
	}
	ps.particles = kept
}

// Particles returns the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
