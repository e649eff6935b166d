package tui

import (
	"github.com/vovakirdan/quantum-defender/internal/audio"
	"github.com/vovakirdan/quantum-defender/internal/games/defender"
)

// eventSource is implemented by games that publish presentation events.
type eventSource interface {
	SetEventSink(defender.EventSink)
}

// AudioSink routes game sound, music and volume events to the audio manager.
// Visual events are ignored here; the game draws its own particles.
func AudioSink(m *audio.Manager) defender.EventSink {
	return defender.EventSinkFunc(func(e defender.Event) {
		switch e.Kind {
		case defender.EventSound:
			m.Play(cueFor(e.Sound))
		case defender.EventMusic:
			switch e.Music {
			case defender.MusicStart:
				m.StartMusic()
			case defender.MusicPause:
				m.PauseMusic()
			case defender.MusicResume:
				m.ResumeMusic()
			case defender.MusicStop:
				m.StopMusic()
			}
		case defender.EventVolume:
			m.SetVolume(e.Value)
		}
	})
}

func cueFor(s defender.Sound) audio.Cue {
	switch s {
	case defender.SoundClick:
		return audio.CueClick
	case defender.SoundExplosion:
		return audio.CueExplosion
	default:
		return audio.CuePowerUp
	}
}
