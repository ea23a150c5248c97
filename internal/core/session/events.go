package session

import "time"

// State represents the current Timer mode.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateOvertime  State = "overtime"
	StateStopped   State = "stopped"
	StateCompleted State = "completed"
)

// EventType defines the type of Poller event.
type EventType string

const (
	EventTick        EventType = "tick"
	EventStateChange EventType = "state_change"
	EventCompleted   EventType = "completed"
)

// Event represents a Timer update for observers.
type Event struct {
	Type     EventType
	State    State
	Snapshot Snapshot
	At       time.Time
}
