package cell

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// eventScheduler implements poles.Scheduler by posting interrupt events
// into the tcell event queue, so callbacks run on the event loop goroutine.
type eventScheduler struct {
	screen tcell.Screen

	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	stopped bool
}

func newEventScheduler(screen tcell.Screen) *eventScheduler {
	return &eventScheduler{
		screen: screen,
		timers: make(map[*time.Timer]struct{}),
	}
}

// AfterFunc posts fn as an interrupt event after d.
func (s *eventScheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, t)
		stopped := s.stopped
		s.mu.Unlock()

		// Wait for queue space: a dropped tick would stall the engine.
		if !stopped {
			s.screen.PostEventWait(tcell.NewEventInterrupt(fn))
		}
	})
	s.timers[t] = struct{}{}
}

// stop cancels pending callbacks; later AfterFunc calls are ignored.
// It must run before the screen is finalized.
func (s *eventScheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for t := range s.timers {
		t.Stop()
	}
	clear(s.timers)
}
