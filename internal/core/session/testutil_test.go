package session

import (
	"sync"
	"testing"
	"time"

	"pomodorini/internal/core/model"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time { return clock.now }

func (clock *fakeClock) Advance(delta time.Duration) { clock.now = clock.now.Add(delta) }

func newTestTimer(t *testing.T, minutes int, overtime bool) (*Timer, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	timer, err := New(model.SessionConfig{GoalMinutes: minutes, AllowsOvertime: overtime}, Config{Clock: clock})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return timer, clock
}

func drain(ch <-chan Event) []Event {
	var events []Event
	for {
		select {
		case event := <-ch:
			events = append(events, event)
		default:
			return events
		}
	}
}

type syncClock struct {
	mu  sync.Mutex
	now time.Time
}

func (clock *syncClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *syncClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	clock.now = clock.now.Add(delta)
	clock.mu.Unlock()
}
