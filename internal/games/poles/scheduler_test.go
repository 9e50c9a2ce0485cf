package poles

import (
	"testing"
	"time"
)

func TestManualSchedulerOrder(t *testing.T) {
	s := NewManualScheduler()
	var order []string

	s.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	for s.Step() {
	}

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("callbacks should run by due time then insertion order, got %v", order)
	}
	if s.Elapsed() != 30*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 30ms", s.Elapsed())
	}
	if s.Step() {
		t.Error("Step() on an empty scheduler should return false")
	}
}

func TestManualSchedulerAdvance(t *testing.T) {
	s := NewManualScheduler()
	count := 0

	var tick func()
	tick = func() {
		count++
		s.AfterFunc(100*time.Millisecond, tick)
	}
	s.AfterFunc(100*time.Millisecond, tick)

	if ran := s.Advance(350 * time.Millisecond); ran != 3 {
		t.Errorf("Advance(350ms) ran %d callbacks, expected 3", ran)
	}
	if count != 3 {
		t.Errorf("expected 3 ticks, got %d", count)
	}
	if s.Elapsed() != 350*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 350ms", s.Elapsed())
	}
	if s.Pending() != 1 {
		t.Errorf("expected the next tick to stay queued, got %d pending", s.Pending())
	}
}

func TestEngineOnManualClock(t *testing.T) {
	e, rec, sched := newTestEngine(t, 32)
	e.Start(nil)

	sched.Advance(3 * InitialSpeed)

	if e.Ticks() != 4 {
		t.Errorf("expected 4 ticks after 3 periods, got %d", e.Ticks())
	}
	if rec.Frames != 4 {
		t.Errorf("expected one frame per tick, got %d", rec.Frames)
	}
}
