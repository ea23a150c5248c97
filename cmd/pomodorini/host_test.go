package main

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"pomodorini/internal/core/session"
	"pomodorini/internal/ui/preferences"
	"pomodorini/internal/ui/tomato"
)

type hostClock struct {
	mu  sync.Mutex
	now time.Time
}

func (clock *hostClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *hostClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	clock.now = clock.now.Add(delta)
	clock.mu.Unlock()
}

func setupHost(t *testing.T, minutes int, overtime bool) (*host, *hostClock) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	clock := &hostClock{now: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pomodoro := newHost(tomato.New(app, tomato.Config{Logger: logger}), session.NewTally(clock), logger)
	pomodoro.clock = clock
	if err := pomodoro.Load(testSettings(minutes, overtime)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(pomodoro.Close)
	return pomodoro, clock
}

// testSettings keeps the background ticker quiet so polls only happen on commands.
func testSettings(minutes int, overtime bool) preferences.Settings {
	return preferences.Settings{GoalMinutes: minutes, AllowsOvertime: overtime, TickInterval: time.Hour}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHostToggleStartsAndStops(t *testing.T) {
	pomodoro, clock := setupHost(t, 25, false)
	timer := pomodoro.current().Timer()

	pomodoro.Toggle()
	if !timer.IsRunning() {
		t.Fatalf("expected toggle to start the timer")
	}
	clock.Advance(3 * time.Minute)
	pomodoro.Toggle()
	if timer.IsRunning() {
		t.Fatalf("expected second toggle to stop the timer")
	}
	if timer.Elapsed() != 3*time.Minute || timer.State() != session.StateStopped {
		t.Fatalf("expected stopped at 3m, got %s at %v", timer.State(), timer.Elapsed())
	}

	pomodoro.Reset()
	if timer.State() != session.StateIdle {
		t.Fatalf("expected idle after reset, got %s", timer.State())
	}
}

func TestHostRecordsCompletionOnce(t *testing.T) {
	pomodoro, clock := setupHost(t, 1, false)
	pomodoro.Start()
	clock.Advance(61 * time.Second)
	pomodoro.refresh()

	waitFor(t, "completion to be tallied", func() bool { return pomodoro.tally.Count() == 1 })

	pomodoro.refresh()
	pomodoro.refresh()
	time.Sleep(20 * time.Millisecond)
	if got := pomodoro.tally.Count(); got != 1 {
		t.Fatalf("expected one tallied pomodorino, got %d", got)
	}
	if entry := pomodoro.tally.Entries()[0]; entry.Elapsed != time.Minute {
		t.Fatalf("expected elapsed clamped to the goal, got %v", entry.Elapsed)
	}
}

func TestHostLoadReplacesPomodorino(t *testing.T) {
	pomodoro, _ := setupHost(t, 25, false)
	previous := pomodoro.current()
	pomodoro.Start()

	if err := pomodoro.Load(testSettings(5, true)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	current := pomodoro.current()
	if current == previous {
		t.Fatalf("expected a new poller after Load")
	}
	if previous.Timer().IsRunning() {
		t.Fatalf("expected the replaced timer to be stopped")
	}
	if current.Timer().Goal() != 5*time.Minute || !current.Timer().AllowsOvertime() {
		t.Fatalf("expected new settings, got goal %v overtime %v", current.Timer().Goal(), current.Timer().AllowsOvertime())
	}

	done := session.Snapshot{State: session.StateCompleted, Goal: time.Minute, Elapsed: time.Minute, Completed: true}
	pomodoro.handle(previous, session.Event{Type: session.EventCompleted, Snapshot: done})
	if got := pomodoro.tally.Count(); got != 0 {
		t.Fatalf("expected events from the replaced poller to be dropped, got %d entries", got)
	}
	pomodoro.handle(current, session.Event{Type: session.EventCompleted, Snapshot: done})
	if got := pomodoro.tally.Count(); got != 1 {
		t.Fatalf("expected the current poller's completion to be tallied, got %d", got)
	}
}

func TestHostLoadRejectsInvalidGoal(t *testing.T) {
	pomodoro, _ := setupHost(t, 25, false)
	previous := pomodoro.current()
	if err := pomodoro.Load(testSettings(0, false)); err == nil {
		t.Fatalf("expected an error for a zero goal")
	}
	if pomodoro.current() != previous {
		t.Fatalf("expected the existing pomodorino to stay loaded")
	}
}

func TestHostCloseStopsTimer(t *testing.T) {
	pomodoro, _ := setupHost(t, 25, false)
	pomodoro.Start()
	pomodoro.Close()
	if pomodoro.current().Timer().IsRunning() {
		t.Fatalf("expected Close to stop the timer")
	}
}
