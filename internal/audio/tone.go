package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine wave with a short linear attack and a linear release.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	attack   int
	rate     beep.SampleRate
}

// newTone creates a sine tone of the given frequency and length.
func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	total := rate.N(d)
	return &tone{
		freq:   freq,
		total:  total,
		attack: min(rate.N(5*time.Millisecond), total/4),
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var vol float64
		if t.position < t.attack {
			vol = float64(t.position) / float64(t.attack)
		} else {
			vol = float64(t.total-t.position) / float64(t.total-t.attack)
		}

		val := math.Sin(2*math.Pi*t.phase) * vol
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// note is one step of a sound effect.
type note struct {
	freq float64
	dur  time.Duration
}

var (
	chimeNotes = []note{{880, 60 * time.Millisecond}, {1320, 90 * time.Millisecond}}
	dirgeNotes = []note{{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 240 * time.Millisecond}}
)

// sequence plays notes back to back at the given linear volume.
func sequence(notes []note, vol float64, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = newTone(n.freq, n.dur, rate)
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: math.Log2(vol)}
}

// Chime is the apple-eaten effect: two rising notes.
func Chime(rate beep.SampleRate) beep.Streamer {
	return sequence(chimeNotes, 0.4, rate)
}

// Dirge is the game-over effect: three falling notes.
func Dirge(rate beep.SampleRate) beep.Streamer {
	return sequence(dirgeNotes, 0.5, rate)
}
