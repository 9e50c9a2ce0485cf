package poles

import (
	"sort"
	"time"
)

// Scheduler runs a callback once after a delay.
// Implementations must deliver callbacks on the same goroutine that delivers
// player input, so the engine never runs concurrently with itself.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

type scheduled struct {
	at  time.Duration
	seq int
	fn  func()
}

// ManualScheduler is a virtual-time Scheduler driven explicitly by the caller.
// It is used for tests and headless simulation.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []scheduled
}

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc queues fn to run once the virtual clock reaches now+d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.seq++
	s.pending = append(s.pending, scheduled{at: s.now + d, seq: s.seq, fn: fn})
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Elapsed returns the virtual time that has passed.
func (s *ManualScheduler) Elapsed() time.Duration {
	return s.now
}

// Step advances the clock to the earliest queued callback and runs it.
// Returns false when nothing is queued.
func (s *ManualScheduler) Step() bool {
	if len(s.pending) == 0 {
		return false
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at != s.pending[j].at {
			return s.pending[i].at < s.pending[j].at
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	next := s.pending[0]
	s.pending = s.pending[1:]
	if next.at > s.now {
		s.now = next.at
	}
	next.fn()
	return true
}

// Advance moves the clock forward by d, running every callback that falls due.
// Returns the number of callbacks run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	deadline := s.now + d
	ran := 0
	for len(s.pending) > 0 && s.earliest() <= deadline {
		s.Step()
		ran++
	}
	s.now = deadline
	return ran
}

func (s *ManualScheduler) earliest() time.Duration {
	at := s.pending[0].at
	for _, p := range s.pending[1:] {
		if p.at < at {
			at = p.at
		}
	}
	return at
}
