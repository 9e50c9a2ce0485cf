package cell

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effects plays the game's sound cues.
type Effects interface {
	Score()
	Crash()
}

// Sound plays short tones through the system speaker.
// A Sound whose speaker failed to initialize stays silent.
type Sound struct {
	mu     sync.Mutex
	ready  bool
	logger *log.Logger
}

// NewSound initializes the speaker when enabled. Audio failures are
// logged and leave the returned Sound silent; the game runs without sound.
func NewSound(enabled bool, logger *log.Logger) *Sound {
	s := &Sound{logger: logger}
	if !enabled {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio initialization failed", "error", err)
		return s
	}
	s.ready = true
	return s
}

// Score plays a short high blip.
func (s *Sound) Score() {
	s.play(tone(880, 50*time.Millisecond, 0.4))
}

// Crash plays a falling two-note buzz.
func (s *Sound) Crash() {
	s.play(beep.Seq(
		tone(220, 120*time.Millisecond, 0.6),
		tone(110, 220*time.Millisecond, 0.6),
	))
}

// Close shuts the speaker down.
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		speaker.Close()
		s.ready = false
	}
}

func (s *Sound) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready || st == nil {
		return
	}
	speaker.Play(st)
}

// tone returns a sine tone of the given frequency, duration and volume (0..1].
func tone(freq float64, d time.Duration, vol float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   math.Log2(vol),
	}
}
