package poles

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-poles/internal/core"
)

// SimConfig configures a headless autopilot run.
type SimConfig struct {
	Width        int         // Lane width
	Seed         int64       // Seed for gap placement
	MaxTicks     int         // Stop after this many ticks (0 = until game over)
	MovesPerTick int         // Autopilot moves applied between ticks
	Logger       *log.Logger // Optional logger for engine events
}

// SimResult summarizes a headless run.
type SimResult struct {
	RunID    string
	Seed     int64
	Score    float64
	Ticks    int
	Elapsed  time.Duration // Virtual game time
	Finished bool          // True if the run ended by collision
}

// Recorder is a Sink that keeps the most recent frame and the final score.
type Recorder struct {
	Poles  []Pole
	Bird   Position
	Frames int
	Scores []int
	Final  int
	Ended  bool
}

// Render records a copy of the frame.
func (r *Recorder) Render(poles []Pole, bird Position) {
	r.Poles = append(r.Poles[:0], poles...)
	r.Bird = bird
	r.Frames++
}

// ScoreChanged records every score notification.
func (r *Recorder) ScoreChanged(score int) {
	r.Scores = append(r.Scores, score)
}

// GameOver records the final score.
func (r *Recorder) GameOver(score int) {
	r.Final = score
	r.Ended = true
}

// Simulate plays one run with the autopilot on virtual time.
func Simulate(cfg SimConfig) (SimResult, error) {
	if cfg.MovesPerTick <= 0 {
		cfg.MovesPerTick = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rec := &Recorder{}
	sched := NewManualScheduler()
	e, err := New(cfg.Width, rec, sched, WithSource(NewSource(cfg.Seed)), WithLogger(logger))
	if err != nil {
		return SimResult{}, fmt.Errorf("poles: simulate: %w", err)
	}

	var pilot Autopilot
	e.Start(nil)
	for e.Running() {
		if cfg.MaxTicks > 0 && e.Ticks() >= cfg.MaxTicks {
			break
		}
		for i := 0; i < cfg.MovesPerTick; i++ {
			switch pilot.Decide(e.Poles(), e.Bird(), e.Height()) {
			case core.ActionUp:
				e.MoveUp()
			case core.ActionDown:
				e.MoveDown()
			}
		}
		if !sched.Step() {
			break
		}
	}

	return SimResult{
		RunID:    e.RunID(),
		Seed:     cfg.Seed,
		Score:    e.Score(),
		Ticks:    e.Ticks(),
		Elapsed:  sched.Elapsed(),
		Finished: rec.Ended,
	}, nil
}
