package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry records one completed Pomodorino.
type Entry struct {
	ID         string
	Goal       time.Duration
	Elapsed    time.Duration
	Overtime   time.Duration
	FinishedAt time.Time
}

// Tally counts completed Pomodorini for the lifetime of the host.
type Tally struct {
	mu      sync.Mutex
	clock   Clock
	entries []Entry
}

// NewTally creates an empty tally. A nil clock uses wall time.
func NewTally(clock Clock) *Tally {
	if clock == nil {
		clock = wallClock{}
	}
	return &Tally{clock: clock}
}

// Record stores a completed snapshot and returns the new entry.
func (tally *Tally) Record(snapshot Snapshot) Entry {
	overtime := snapshot.Elapsed - snapshot.Goal
	if overtime < 0 {
		overtime = 0
	}
	entry := Entry{
		ID:         uuid.NewString(),
		Goal:       snapshot.Goal,
		Elapsed:    snapshot.Elapsed,
		Overtime:   overtime,
		FinishedAt: tally.clock.Now(),
	}

	tally.mu.Lock()
	tally.entries = append(tally.entries, entry)
	tally.mu.Unlock()
	return entry
}

// Count returns the number of recorded entries.
func (tally *Tally) Count() int {
	tally.mu.Lock()
	defer tally.mu.Unlock()
	return len(tally.entries)
}

// TotalFocus sums elapsed time across entries.
func (tally *Tally) TotalFocus() time.Duration {
	tally.mu.Lock()
	defer tally.mu.Unlock()
	var total time.Duration
	for _, entry := range tally.entries {
		total += entry.Elapsed
	}
	return total
}

// Entries returns a copy of the recorded entries, oldest first.
func (tally *Tally) Entries() []Entry {
	tally.mu.Lock()
	defer tally.mu.Unlock()
	return append([]Entry(nil), tally.entries...)
}

// Reset forgets every entry.
func (tally *Tally) Reset() {
	tally.mu.Lock()
	tally.entries = nil
	tally.mu.Unlock()
}
