// Package poles implements the pole-dodging game engine.
// A bird moves up and down in a fixed-width lane while pairs of poles scroll
// in from the right; touching a pole ends the run, passing one scores.
package poles

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Game constants
const (
	InitialSpeed        = 300 * time.Millisecond // Tick period at score 0
	InitialPoleGap      = 5                      // Gap size at score 0
	InitialPoleInterval = 8                      // Ticks between spawns at score 0
	MinPoleGap          = 2
	MinPoleInterval     = 3

	LaneHeight   = 16 // Rows in the lane
	MaxLaneWidth = 32 // Columns in the lane on wide displays
	MinLaneWidth = 4  // Narrowest lane that leaves room in front of the bird
	BirdColumn   = 2  // Fixed column of the bird
)

var (
	// ErrNilSink is returned when an engine is created without a sink.
	ErrNilSink = errors.New("poles: sink is required")
	// ErrNilScheduler is returned when an engine is created without a scheduler.
	ErrNilScheduler = errors.New("poles: scheduler is required")
	// ErrLaneTooNarrow is returned for lanes narrower than MinLaneWidth.
	ErrLaneTooNarrow = errors.New("poles: lane too narrow")
)

// Source supplies uniformly distributed values in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded pseudo-random Source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for run events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSource sets the random source used to place gaps.
func WithSource(src Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rng = src
		}
	}
}

// Engine runs the game simulation.
// It is not safe for concurrent use: Start, MoveUp, MoveDown and the
// scheduled ticks must all be delivered on one goroutine.
type Engine struct {
	width  int
	height int
	sink   Sink
	sched  Scheduler
	rng    Source
	logger *log.Logger

	poles      []Pole
	bird       Position
	difficulty Difficulty
	tickIndex  int // Spawn cadence counter in [0, PoleInterval)
	ticks      int // Ticks run since Start
	halfPoints int // Score in units of 0.5
	running    bool
	onEnd      func()
	runID      string
}

// New creates an engine for a lane of the given width.
// The engine starts stopped; call Start to begin a run.
func New(width int, sink Sink, sched Scheduler, opts ...Option) (*Engine, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	if sched == nil {
		return nil, ErrNilScheduler
	}
	if width < MinLaneWidth {
		return nil, fmt.Errorf("%w: width %d, need at least %d", ErrLaneTooNarrow, width, MinLaneWidth)
	}

	e := &Engine{
		width:      width,
		height:     LaneHeight,
		sink:       sink,
		sched:      sched,
		rng:        NewSource(time.Now().UnixNano()),
		logger:     log.New(io.Discard),
		difficulty: InitialDifficulty(),
		bird:       Position{X: BirdColumn, Y: LaneHeight / 2},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start begins a new run if none is in progress.
// onEnd, if non-nil, is called once when the run ends.
func (e *Engine) Start(onEnd func()) {
	if e.running {
		return
	}

	e.onEnd = onEnd
	e.running = true
	e.runID = uuid.NewString()
	e.bird = Position{X: BirdColumn, Y: e.height / 2}
	e.poles = nil
	e.difficulty = InitialDifficulty()
	e.tickIndex = 0
	e.ticks = 0
	e.halfPoints = 0
	e.notifyScore()

	e.logger.Debug("run started", "run", e.runID, "width", e.width, "height", e.height)

	e.tick()
}

// MoveUp moves the bird one row up. Ignored while stopped.
func (e *Engine) MoveUp() {
	if e.running {
		e.bird.Y = max(0, e.bird.Y-1)
	}
}

// MoveDown moves the bird one row down. Ignored while stopped.
func (e *Engine) MoveDown() {
	if e.running {
		e.bird.Y = min(e.height-1, e.bird.Y+1)
	}
}

// tick advances the simulation by one step and schedules the next one.
func (e *Engine) tick() {
	if !e.running {
		return
	}

	e.poles = Shift(e.poles)
	if e.tickIndex == 0 {
		e.spawn()
	}
	e.tickIndex = (e.tickIndex + 1) % e.difficulty.PoleInterval
	e.ticks++

	e.sink.Render(e.Poles(), e.bird)

	if e.detectCollision() {
		e.endGame()
		return
	}

	e.sched.AfterFunc(e.difficulty.Speed, e.tick)
}

// spawn appends a new pole pair at the right edge.
func (e *Engine) spawn() {
	gapStart := GapStart(e.rng.Float64(), e.height, e.difficulty.PoleGap)
	top, bottom := NewPair(e.width-1, e.height, e.difficulty.PoleGap, gapStart)
	e.poles = append(e.poles, top, bottom)

	e.logger.Debug("poles spawned", "run", e.runID, "tick", e.ticks, "gap_start", gapStart, "gap", e.difficulty.PoleGap)
}

// detectCollision checks the poles in the bird's column in order.
// Every segment the bird clears adds half a point; the first hit stops the scan.
func (e *Engine) detectCollision() bool {
	for _, p := range e.poles {
		if p.X != e.bird.X {
			continue
		}
		if p.Hits(e.bird.Y) {
			return true
		}
		e.addHalfPoint()
	}
	return false
}

// addHalfPoint raises the score by 0.5 and recomputes the difficulty.
func (e *Engine) addHalfPoint() {
	e.halfPoints++

	prev := e.difficulty
	e.difficulty = e.difficulty.ForScore(e.Score())
	if e.difficulty != prev {
		e.logger.Debug("difficulty changed",
			"run", e.runID,
			"score", e.Score(),
			"speed", e.difficulty.Speed,
			"interval", e.difficulty.PoleInterval,
			"gap", e.difficulty.PoleGap,
		)
	}

	e.notifyScore()
}

func (e *Engine) notifyScore() {
	if s, ok := e.sink.(ScoreSink); ok {
		s.ScoreChanged(e.FinalScore())
	}
}

// endGame stops the run and reports the result.
func (e *Engine) endGame() {
	e.running = false
	final := e.FinalScore()

	e.logger.Info("game over", "run", e.runID, "score", final, "ticks", e.ticks)

	if onEnd := e.onEnd; onEnd != nil {
		e.onEnd = nil
		onEnd()
	}
	if s, ok := e.sink.(GameOverSink); ok {
		s.GameOver(final)
	}
}

// Running reports whether a run is in progress.
func (e *Engine) Running() bool {
	return e.running
}

// Score returns the exact score of the current or last run.
func (e *Engine) Score() float64 {
	return float64(e.halfPoints) / 2
}

// FinalScore returns the score rounded down, as shown to the player.
func (e *Engine) FinalScore() int {
	return int(math.Floor(e.Score()))
}

// Bird returns the bird position.
func (e *Engine) Bird() Position {
	return e.bird
}

// Poles returns a copy of the active poles.
func (e *Engine) Poles() []Pole {
	out := make([]Pole, len(e.poles))
	copy(out, e.poles)
	return out
}

// Difficulty returns the current difficulty parameters.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// Width returns the lane width in columns.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the lane height in rows.
func (e *Engine) Height() int {
	return e.height
}

// Ticks returns the number of ticks run since the last Start.
func (e *Engine) Ticks() int {
	return e.ticks
}

// RunID identifies the current or last run in logs.
func (e *Engine) RunID() string {
	return e.runID
}
