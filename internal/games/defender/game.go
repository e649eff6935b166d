package defender

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/quantum-defender/internal/config"
	"github.com/vovakirdan/quantum-defender/internal/core"
	"github.com/vovakirdan/quantum-defender/internal/registry"
)

// Phase is the state machine position of a mission.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

const (
	initialEnergy    = 100
	initialTimeLeft  = 60
	initialTotal     = 10
	volumeStep       = 10
	defaultTickRate  = 30
	minScreenW       = 40
	minScreenH       = 15
	noDrag           = -1
	colorInitMessage = core.ColorBrightCyan
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// FinalStats is the frozen summary shown on the game-over screen.
type FinalStats struct {
	Score     int
	Level     int // Levels cleared: the current level on success, one less on failure
	Destroyed int
	Energy    int
	Success   bool
}

// Game implements the Quantum Defender state machine.
type Game struct {
	// Configuration
	runtime  core.RuntimeConfig
	cfg      config.DefenderConfig
	fixedCfg *config.DefenderConfig // Set by NewWithConfig, bypasses file loading

	rng       *rand.Rand
	sched     *Scheduler
	sink      EventSink
	particles *ParticleSystem

	// Mission state
	phase     Phase
	score     int
	energy    int
	level     int
	timeLeft  int
	destroyed int
	total     int
	powers    PowerUses

	timeSlowed   bool
	shieldActive bool

	anomalies []*Anomaly
	spawned   int
	graph     *Graph
	flashes   map[[2]int]time.Duration

	tickTimer   TimerID
	spawnTimer  TimerID
	bannerTimer TimerID

	// Presentation state
	banner      string
	bannerColor core.Color
	helpVisible bool
	final       FinalStats
	volume      int // 0-100
	dragNode    int
	frame       uint64

	screenTooSmall bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{dragNode: noDrag}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.DefenderConfig) *Game {
	cfg.Sanitize()
	return &Game{fixedCfg: &cfg, dragNode: noDrag}
}

// SetEventSink routes game events to s in addition to the particle system.
func (g *Game) SetEventSink(s EventSink) {
	g.sink = s
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "defender"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Quantum Defender"
}

// Reset initializes the game for a fresh session: config, RNG, scheduler,
// node layout and mission state. The help modal pops up after the help delay.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = defaultTickRate
	}
	g.runtime = runtime

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadDefender(configPath)
		if err != nil {
			cfg = config.DefaultDefenderConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness, seeded for replays
	g.sched = NewScheduler()
	g.particles = NewParticleSystem(runtime.Seed + 1)
	g.graph = NewGraph(g.cfg.Arena.Width, g.cfg.Arena.Height, g.cfg.Nodes.ConnectThreshold)
	g.spawned = 0
	g.frame = 0
	g.helpVisible = false
	g.bannerTimer = 0

	g.volume = 0
	if g.cfg.Audio.Enabled {
		g.volume = int(math.Round(g.cfg.Audio.Volume * 100))
	}

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.resetMission()
	g.emit(Event{Kind: EventVolume, Value: g.Volume()})

	if g.cfg.Timing.HelpDelay > 0 {
		g.sched.After(g.cfg.Timing.HelpDelay, func() {
			g.helpVisible = true
		})
	}
}

// resetMission restores every scalar to its initial value and returns to the menu.
func (g *Game) resetMission() {
	g.phase = PhaseMenu
	g.score = 0
	g.energy = initialEnergy
	g.level = 1
	g.timeLeft = initialTimeLeft
	g.destroyed = 0
	g.total = initialTotal
	g.powers = fullPowers(g.cfg.Powers.MaxUses)
	g.anomalies = g.anomalies[:0]
	g.flashes = make(map[[2]int]time.Duration)
	g.final = FinalStats{}
	g.dragNode = noDrag
	g.hideMessage()
}

// Resize adapts the game to a new terminal size.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < minScreenW || height < minScreenH
}

// Step applies one frame of input, then advances the virtual clock by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	if !g.screenTooSmall {
		g.applyActions(in)
		g.applyPointer(in.Pointer)
	}

	// Derive the clock from the frame count so fractional frame lengths never drift.
	target := time.Duration(g.frame) * time.Second / time.Duration(g.runtime.TickRate)
	g.sched.Advance(target - g.sched.Now())
	g.particles.Update()

	return core.StepResult{State: g.State()}
}

func (g *Game) applyActions(in core.InputFrame) {
	if in.Has(core.ActionHelp) {
		g.helpVisible = !g.helpVisible
	}

	if in.Has(core.ActionConfirm) {
		switch {
		case g.helpVisible:
			g.helpVisible = false
		case g.phase == PhaseMenu:
			g.Start()
		case g.phase == PhaseGameOver:
			g.Restart()
		}
	}

	if in.Has(core.ActionStart) {
		g.Start()
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if in.Has(core.ActionRestart) {
		g.Restart()
	}

	if in.Has(core.ActionSlowTime) {
		g.ActivateSlowTime()
	}
	if in.Has(core.ActionShield) {
		g.ActivateShield()
	}
	if in.Has(core.ActionBlast) {
		g.ActivateBlast()
	}

	if in.Has(core.ActionVolumeUp) {
		g.SetVolume(g.volume + volumeStep)
	}
	if in.Has(core.ActionVolumeDown) {
		g.SetVolume(g.volume - volumeStep)
	}
}

// Start begins a mission. Valid only from the menu.
func (g *Game) Start() {
	if g.phase != PhaseMenu {
		return
	}
	g.phase = PhasePlaying
	g.helpVisible = false

	g.emit(Event{Kind: EventMusic, Music: MusicStart})

	g.tickTimer = g.sched.Every(g.cfg.Timing.TickInterval, g.tick)
	g.spawnTimer = g.sched.Every(g.cfg.Spawn.InitialInterval, g.spawnAnomaly)
	g.spawnAnomaly()

	g.showMessage("QUANTUM DEFENSE INITIATED!", colorInitMessage)
}

// TogglePause switches between playing and paused. Timers keep running
// and guard themselves on the phase.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhasePlaying:
		g.phase = PhasePaused
		g.dragNode = noDrag
		g.emit(Event{Kind: EventMusic, Music: MusicPause})
		g.showMessage("GAME PAUSED", core.ColorYellow)
	case PhasePaused:
		g.phase = PhasePlaying
		g.emit(Event{Kind: EventMusic, Music: MusicResume})
		g.hideMessage()
	}
}

// Restart aborts the current mission from any phase and returns to the menu.
// Node positions are kept. Power expiry timers stay armed.
func (g *Game) Restart() {
	g.stopTimers()
	g.resetMission()
	g.emit(Event{Kind: EventMusic, Music: MusicStop})
}

func (g *Game) stopTimers() {
	g.sched.Cancel(g.tickTimer)
	g.sched.Cancel(g.spawnTimer)
	g.tickTimer, g.spawnTimer = 0, 0
}

// tick runs once per tick interval: clock, movement, collisions, completion.
func (g *Game) tick() {
	if g.phase != PhasePlaying {
		return
	}

	g.timeLeft--
	if g.timeLeft <= 0 {
		g.endGame(false)
		return
	}

	g.moveAnomalies()
	if g.phase != PhasePlaying {
		return
	}
	g.checkConnectionCollisions()

	if g.destroyed >= g.total {
		g.completeLevel()
	}
}

// completeLevel awards the level bonus and advances to the next level.
func (g *Game) completeLevel() {
	bonus := g.levelBonus()
	g.score += bonus
	g.showMessage(fmt.Sprintf("LEVEL %d COMPLETE! +%d POINTS", g.level, bonus), colorInitMessage)

	if final := g.cfg.Campaign.FinalLevel; final > 0 && g.level >= final {
		g.endGame(true)
		return
	}

	g.level++
	next := LevelConfigFor(g.level)
	g.timeLeft = next.TimeLimit
	g.destroyed = 0
	g.total = next.AnomalyCount
	g.energy = core.Min(g.cfg.Energy.Max, g.energy+g.cfg.Energy.LevelRefill)
	g.powers.refill(g.cfg.Powers.MaxUses)

	g.emit(Event{Kind: EventSound, Sound: SoundPowerUp})

	if g.cfg.Spawn.ScaleWithLevel {
		g.sched.Cancel(g.spawnTimer)
		g.spawnTimer = g.sched.Every(next.SpawnRate, g.spawnAnomaly)
	}
}

// levelBonus is floor(timeLeft*2) + floor(energy/2) + 50*level.
func (g *Game) levelBonus() int {
	return g.timeLeft*2 + g.energy/2 + 50*g.level
}

// endGame stops the mission timers and freezes the summary.
func (g *Game) endGame(success bool) {
	if g.phase == PhaseGameOver {
		return
	}
	g.phase = PhaseGameOver
	g.dragNode = noDrag
	g.stopTimers()

	levels := g.level
	if !success {
		levels--
	}
	g.final = FinalStats{
		Score:     g.score,
		Level:     levels,
		Destroyed: g.destroyed,
		Energy:    g.energy,
		Success:   success,
	}

	g.emit(Event{Kind: EventMusic, Music: MusicStop})
}

// showMessage displays a banner that hides itself after the banner duration.
// A newer banner replaces the older one and its timer.
func (g *Game) showMessage(text string, color core.Color) {
	g.banner = text
	g.bannerColor = color

	g.sched.Cancel(g.bannerTimer)
	g.bannerTimer = g.sched.After(g.cfg.Timing.BannerDuration, g.hideMessage)

	g.emit(Event{Kind: EventMessage, Text: text, Color: color})
}

func (g *Game) hideMessage() {
	g.banner = ""
	if g.sched != nil {
		g.sched.Cancel(g.bannerTimer)
	}
	g.bannerTimer = 0
}

// SetVolume sets the master volume in percent, clamped to [0, 100].
func (g *Game) SetVolume(percent int) {
	percent = core.Clamp(percent, 0, 100)
	if percent == g.volume {
		return
	}
	g.volume = percent
	g.emit(Event{Kind: EventVolume, Value: g.Volume()})
}

// Volume returns the master volume as a gain in [0, 1].
func (g *Game) Volume() float64 {
	return float64(g.volume) / 100
}

func (g *Game) emit(e Event) {
	if g.particles != nil {
		g.particles.Emit(e)
	}
	if g.sink != nil {
		g.sink.Emit(e)
	}
}

func (g *Game) corePos() core.Vec2 {
	return core.Vec2{X: g.cfg.Arena.Width / 2, Y: g.cfg.Arena.Height / 2}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
		Success:  g.final.Success,
	}
}

// Result converts the frozen game-over summary for persistence.
func (g *Game) Result() core.RunResult {
	return core.RunResult{
		Score:     g.final.Score,
		Level:     g.final.Level,
		Destroyed: g.final.Destroyed,
		Energy:    g.final.Energy,
		Success:   g.final.Success,
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Energy returns the core energy in [0, 100].
func (g *Game) Energy() int { return g.energy }

// Level returns the current level (1-based).
func (g *Game) Level() int { return g.level }

// TimeLeft returns the seconds left on the level clock.
func (g *Game) TimeLeft() int { return g.timeLeft }

// Destroyed returns the anomalies destroyed this level.
func (g *Game) Destroyed() int { return g.destroyed }

// Total returns the anomalies required to clear this level.
func (g *Game) Total() int { return g.total }

// Powers returns the remaining power charges.
func (g *Game) Powers() PowerUses { return g.powers }

// TimeSlowed reports whether the slow-time power is active.
func (g *Game) TimeSlowed() bool { return g.timeSlowed }

// ShieldActive reports whether the shield power is active.
func (g *Game) ShieldActive() bool { return g.shieldActive }

// Banner returns the visible banner text, or "".
func (g *Game) Banner() string { return g.banner }

// HelpVisible reports whether the instructions modal is open.
func (g *Game) HelpVisible() bool { return g.helpVisible }

// Final returns the frozen summary of the last finished mission.
func (g *Game) Final() FinalStats { return g.final }

// Graph returns the defense node graph.
func (g *Game) Graph() *Graph { return g.graph }

// Config returns the active game configuration.
func (g *Game) Config() config.DefenderConfig { return g.cfg }

// Particles returns the cosmetic particle system.
func (g *Game) Particles() *ParticleSystem { return g.particles }

// Now returns the virtual clock time.
func (g *Game) Now() time.Duration { return g.sched.Now() }

func init() {
	registry.Register("defender", func() registry.Game {
		return New()
	})
}
