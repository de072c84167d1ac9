// Package audio plays the game's sound effects on the local audio device.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/purple-snake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays the sounds attached to game events.
// Play must not block the caller.
type Player interface {
	Play(events []core.Event)
	Close()
}

// Noop is a Player that stays silent.
type Noop struct{}

func (Noop) Play([]core.Event) {}
func (Noop) Close() {}

// Speaker mixes effects into the system speaker.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Open returns a Speaker when enabled and an audio device is available.
// Otherwise it returns Noop; the error explains why the device was skipped.
func Open(enabled bool) (Player, error) {
	if !enabled {
		return Noop{}, nil
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	if speakerErr != nil {
		return Noop{}, fmt.Errorf("audio: init speaker: %w", speakerErr)
	}

	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the effect for each event and returns immediately.
// Overlapping effects are mixed.
func (s *Speaker) Play(events []core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	for _, ev := range events {
		st := Effect(ev)
		if st == nil {
			continue
		}
		speaker.Lock()
		s.mixer.Add(st)
		speaker.Unlock()
	}
}

// Close silences the mixer. The speaker itself stays initialised for the
// life of the process.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Effect returns a fresh streamer for the event, or nil for silent events.
func Effect(ev core.Event) beep.Streamer {
	switch ev {
	case core.EventAppleEaten:
		return Chime(sampleRate)
	case core.EventGameOver:
		return Dirge(sampleRate)
	default:
		return nil
	}
}
