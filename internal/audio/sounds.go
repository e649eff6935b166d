package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero gain is
// expressed as a silent volume effect.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, gain)
	return v
}

func setVolume(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(gain), false
}

func cueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueClick:
		return clickSound()
	case CueExplosion:
		return explosionSound()
	default:
		return powerUpSound()
	}
}

// tone returns a sine tone of the given length with a short linear fade out.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return &fade{Streamer: beep.Take(sampleRate.N(d), sine), total: sampleRate.N(d)}
}

// clickSound is a short high blip.
func clickSound() beep.Streamer {
	return tone(1320, 40*time.Millisecond)
}

// powerUpSound is a rising three-note arpeggio.
func powerUpSound() beep.Streamer {
	return beep.Seq(
		tone(523.25, 70*time.Millisecond),
		tone(659.25, 70*time.Millisecond),
		tone(783.99, 120*time.Millisecond),
	)
}

// explosionSound is decaying noise over a low rumble.
func explosionSound() beep.Streamer {
	n := sampleRate.N(350 * time.Millisecond)
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- audio noise
	return beep.Take(n, beep.Mix(
		&noiseBurst{total: n, rng: rng},
		&fade{Streamer: beep.Take(n, mustSine(70)), total: n},
	))
}

func mustSine(freq float64) beep.Streamer {
	s, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(-1)
	}
	return s
}

// fade scales a finite stream linearly from full to zero over total samples.
type fade struct {
	beep.Streamer
	pos   int
	total int
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1 - float64(f.pos)/float64(f.total)
		if g < 0 {
			g = 0
		}
		samples[i][0] *= g * 0.5
		samples[i][1] *= g * 0.5
		f.pos++
	}
	return n, ok
}

// noiseBurst is white noise with an exponential decay.
type noiseBurst struct {
	pos   int
	total int
	rng   *rand.Rand
}

func (b *noiseBurst) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(sampleRate)
		v := math.Exp(-t*10) * (b.rng.Float64()*2 - 1) * 0.4
		samples[i][0], samples[i][1] = v, v
		b.pos++
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }

// drone is the endless background loop: a slow pulsing chord.
type drone struct {
	sr  beep.SampleRate
	pos int
}

func newDrone(sr beep.SampleRate) *drone {
	return &drone{sr: sr}
}

func (d *drone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(d.pos) / float64(d.sr)
		pulse := 0.6 + 0.4*math.Sin(2*math.Pi*0.25*t)
		v := pulse * (0.20*math.Sin(2*math.Pi*55*t) +
			0.12*math.Sin(2*math.Pi*82.41*t) +
			0.06*math.Sin(2*math.Pi*110*t))
		samples[i][0], samples[i][1] = v, v
		d.pos++
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }
