package defender

import "github.com/vovakirdan/quantum-defender/internal/core"

// EventKind identifies a presentation event emitted by the game.
type EventKind int

const (
	EventExplosion       EventKind = iota // Anomaly destroyed at Pos
	EventCoreHit                          // Anomaly reached the core at Pos
	EventPowerUp                          // Power activated, ring at Pos
	EventSound                            // One-shot sound cue
	EventMusic                            // Background music control
	EventMessage                          // Banner text shown
	EventConnectionFlash                  // Connection intercepted an anomaly
	EventVolume                           // Master volume changed (Value 0.0-1.0)
)

// Sound is a one-shot audio cue.
type Sound int

const (
	SoundClick Sound = iota
	SoundExplosion
	SoundPowerUp
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundClick:
		return "click"
	case SoundExplosion:
		return "explosion"
	case SoundPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// MusicCue controls the background loop.
type MusicCue int

const (
	MusicStart MusicCue = iota
	MusicPause
	MusicResume
	MusicStop
)

// Event is a fire-and-forget notification for effects and audio.
// Nothing in the game reads events back.
type Event struct {
	Kind        EventKind
	Pos         core.Vec2
	AnomalyType int
	Sound       Sound
	Music       MusicCue
	Text        string
	Color       core.Color
	From, To    int     // Connection endpoints for EventConnectionFlash
	Value       float64 // Volume for EventVolume
}

// EventSink receives game events.
type EventSink interface {
	Emit(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Emit calls f(e).
func (f EventSinkFunc) Emit(e Event) {
	f(e)
}

// fanout delivers each event to every sink in order.
type fanout []EventSink

func (f fanout) Emit(e Event) {
	for _, s := range f {
		if s != nil {
			s.Emit(e)
		}
	}
}
