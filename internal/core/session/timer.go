package session

import (
	"sync"
	"time"

	"pomodorini/internal/core/model"
)

// MaxProgress is the largest progress value shown as ripeness.
const MaxProgress = 2.0

// Config contains runtime options for Timer.
type Config struct {
	Clock Clock
}

// Snapshot is a consistent view of a Timer taken from a single clock read.
type Snapshot struct {
	State          State
	Goal           time.Duration
	Elapsed        time.Duration
	Remaining      time.Duration
	Progress       float64
	Ripeness       float64
	Running        bool
	Completed      bool
	Overtime       bool
	AllowsOvertime bool
}

// FormattedTime renders the remaining time as MM:SS.
func (snapshot Snapshot) FormattedTime() string {
	return FormatClock(snapshot.Remaining)
}

// Timer is a polled state machine tracking one Pomodorino against its goal.
// It owns no goroutine; elapsed time only advances when it is read.
type Timer struct {
	mu             sync.Mutex
	clock          Clock
	goal           time.Duration
	allowsOvertime bool
	startedAt      time.Time
	frozen         time.Duration
	running        bool
}

// New creates a Timer with the provided configuration.
func New(config model.SessionConfig, options Config) (*Timer, error) {
	if !config.ValidGoal() {
		return nil, &InvalidDurationError{Minutes: config.GoalMinutes}
	}
	if options.Clock == nil {
		options.Clock = wallClock{}
	}
	return &Timer{
		clock:          options.Clock,
		goal:           config.GoalDuration(),
		allowsOvertime: config.AllowsOvertime,
	}, nil
}

// Goal returns the configured goal duration.
func (timer *Timer) Goal() time.Duration {
	return timer.goal
}

// AllowsOvertime reports whether the timer keeps running past its goal.
func (timer *Timer) AllowsOvertime() bool {
	return timer.allowsOvertime
}

// Start begins or resumes the run. A timer that stopped at its goal stays
// completed until Reset.
func (timer *Timer) Start() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.running {
		return
	}
	if !timer.allowsOvertime && timer.frozen >= timer.goal {
		return
	}
	timer.startedAt = timer.clock.Now()
	timer.running = true
}

// Stop freezes elapsed time.
func (timer *Timer) Stop() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if !timer.running {
		return
	}
	timer.frozen = timer.elapsedLocked(timer.clock.Now())
	timer.running = false
	timer.startedAt = time.Time{}
}

// Reset returns the timer to idle.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.frozen = 0
	timer.running = false
	timer.startedAt = time.Time{}
}

// Snapshot reads every derived value at once.
func (timer *Timer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.snapshotLocked(timer.clock.Now())
}

// Elapsed returns the time spent on the current run.
func (timer *Timer) Elapsed() time.Duration {
	return timer.Snapshot().Elapsed
}

// Remaining returns the time left until the goal, never negative.
func (timer *Timer) Remaining() time.Duration {
	return timer.Snapshot().Remaining
}

// Progress returns elapsed divided by goal.
func (timer *Timer) Progress() float64 {
	return timer.Snapshot().Progress
}

// IsRunning reports whether the timer is advancing.
func (timer *Timer) IsRunning() bool {
	return timer.Snapshot().Running
}

// IsCompleted reports whether the goal was reached.
func (timer *Timer) IsCompleted() bool {
	return timer.Snapshot().Completed
}

// FormattedTime renders the remaining time as MM:SS.
func (timer *Timer) FormattedTime() string {
	return timer.Snapshot().FormattedTime()
}

// State returns the current state.
func (timer *Timer) State() State {
	return timer.Snapshot().State
}

func (timer *Timer) snapshotLocked(now time.Time) Snapshot {
	elapsed := timer.elapsedLocked(now)
	if timer.running && !timer.allowsOvertime && elapsed >= timer.goal {
		timer.frozen = timer.goal
		timer.running = false
		timer.startedAt = time.Time{}
		elapsed = timer.goal
	}

	remaining := timer.goal - elapsed
	if remaining < 0 {
		remaining = 0
	}
	progress := float64(elapsed) / float64(timer.goal)
	ripeness := progress
	if ripeness > MaxProgress {
		ripeness = MaxProgress
	}
	completed := elapsed >= timer.goal

	return Snapshot{
		State:     timer.stateLocked(elapsed, completed),
		Goal:      timer.goal,
		Elapsed:   elapsed,
		Remaining: remaining,
		Progress:  progress,
		Ripeness:  ripeness,
		Running:   timer.running,
		Completed: completed,
		Overtime:  elapsed > timer.goal,

		AllowsOvertime: timer.allowsOvertime,
	}
}

func (timer *Timer) elapsedLocked(now time.Time) time.Duration {
	elapsed := timer.frozen
	if timer.running {
		if delta := now.Sub(timer.startedAt); delta > 0 {
			elapsed += delta
		}
	}
	if !timer.allowsOvertime && elapsed > timer.goal {
		elapsed = timer.goal
	}
	return elapsed
}

func (timer *Timer) stateLocked(elapsed time.Duration, completed bool) State {
	switch {
	case timer.running && completed:
		return StateOvertime
	case timer.running:
		return StateRunning
	case completed:
		return StateCompleted
	case elapsed > 0:
		return StateStopped
	default:
		return StateIdle
	}
}
