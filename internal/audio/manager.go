// Package audio plays the game's synthesized sound cues through gopxl/beep.
// Audio is optional: if the speaker cannot be opened the manager logs once
// and stays silent.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultVolume is the master volume used when none is configured.
	DefaultVolume = 0.7
)

// Channel is an audio channel with its own gain multiplier.
type Channel int

const (
	ChannelMusic Channel = iota
	ChannelClick
	ChannelExplosion
	ChannelPowerUp
)

// Gains are the per-channel multipliers of the master volume.
var Gains = map[Channel]float64{
	ChannelMusic:     0.5,
	ChannelClick:     0.7,
	ChannelExplosion: 0.6,
	ChannelPowerUp:   0.7,
}

// Cue is a one-shot sound.
type Cue int

const (
	CueClick Cue = iota
	CueExplosion
	CuePowerUp
)

func (c Cue) channel() Channel {
	switch c {
	case CueClick:
		return ChannelClick
	case CueExplosion:
		return ChannelExplosion
	default:
		return ChannelPowerUp
	}
}

// output abstracts the speaker so the mixer can be driven in tests.
type output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, n int) error { return speaker.Init(sr, n) }
func (speakerOutput) Play(s ...beep.Streamer)              { speaker.Play(s...) }
func (speakerOutput) Lock()                                { speaker.Lock() }
func (speakerOutput) Unlock()                              { speaker.Unlock() }

// Options configures a Manager.
type Options struct {
	Enabled bool
	Volume  float64 // Master volume, 0.0 - 1.0
	Logger  *log.Logger
}

// Manager owns the speaker, the mixer and the background music loop.
// It is safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	out    output
	logger *log.Logger

	enabled     bool
	initialized bool
	failed      bool
	master      float64

	mixer    *beep.Mixer
	music    *beep.Ctrl
	musicVol *effects.Volume
}

// NewManager creates a manager. The speaker is opened lazily on first use.
func NewManager(opts Options) *Manager {
	return newManager(opts, speakerOutput{})
}

func newManager(opts Options, out output) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		out:     out,
		logger:  logger,
		enabled: opts.Enabled,
		master:  clampVolume(opts.Volume),
		mixer:   &beep.Mixer{},
	}
}

// Init opens the speaker. It is called lazily by the play methods; calling it
// early moves the startup latency out of the first sound. A failure switches
// the manager to silent mode for good and is logged once.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initLocked()
}

func (m *Manager) initLocked() error {
	if m.initialized || m.failed || !m.enabled {
		return nil
	}

	if err := m.out.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		m.failed = true
		m.logger.Warn("audio unavailable, continuing silently", "err", err)
		return err
	}

	m.out.Play(m.mixer)
	m.initialized = true
	return nil
}

// ready initializes on demand and reports whether sound can be played.
func (m *Manager) ready() bool {
	_ = m.initLocked()
	return m.initialized
}

// Silent reports whether the manager produces no sound.
func (m *Manager) Silent() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.enabled || m.failed
}

// Play starts a one-shot cue at the cue's channel gain.
func (m *Manager) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready() {
		return
	}

	s := newVolume(cueStreamer(c), m.master*Gains[c.channel()])

	m.out.Lock()
	m.mixer.Add(s)
	m.out.Unlock()
}

// StartMusic restarts the background loop from the beginning.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready() {
		return
	}

	m.out.Lock()
	defer m.out.Unlock()

	m.stopMusicLocked()
	m.musicVol = newVolume(newDrone(sampleRate), m.master*Gains[ChannelMusic])
	m.music = &beep.Ctrl{Streamer: m.musicVol}
	m.mixer.Add(m.music)
}

// PauseMusic pauses the background loop.
func (m *Manager) PauseMusic() {
	m.setMusicPaused(true)
}

// ResumeMusic resumes a paused background loop.
func (m *Manager) ResumeMusic() {
	m.setMusicPaused(false)
}

func (m *Manager) setMusicPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return
	}
	m.out.Lock()
	m.music.Paused = paused
	m.out.Unlock()
}

// StopMusic stops the background loop and rewinds it.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return
	}
	m.out.Lock()
	m.stopMusicLocked()
	m.out.Unlock()
}

// stopMusicLocked drains the music control so the mixer drops it.
func (m *Manager) stopMusicLocked() {
	if m.music == nil {
		return
	}
	m.music.Streamer = nil
	m.music = nil
	m.musicVol = nil
}

// MusicPlaying reports whether the background loop is running and unpaused.
func (m *Manager) MusicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.music != nil && !m.music.Paused
}

// SetVolume sets the master volume, clamped to [0, 1]. The running music
// follows immediately; one-shots pick it up on their next play.
func (m *Manager) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.master = clampVolume(v)

	if m.musicVol == nil {
		return
	}
	m.out.Lock()
	setVolume(m.musicVol, m.master*Gains[ChannelMusic])
	m.out.Unlock()
}

// Volume returns the master volume.
func (m *Manager) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.master
}

// Close silences everything. The speaker itself stays open for the process.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.out.Lock()
	m.stopMusicLocked()
	m.mixer.Clear()
	m.out.Unlock()

	m.initialized = false
	m.enabled = false
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
