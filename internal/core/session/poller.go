package session

import (
	"sync"
	"time"
)

// PollerConfig contains runtime options for Poller.
type PollerConfig struct {
	TickInterval time.Duration
}

// Poller re-reads a Timer on a fixed cadence and fans the result out to
// subscribers. It belongs to the host view, not to the Timer.
type Poller struct {
	mu            sync.Mutex
	timer         *Timer
	options       PollerConfig
	events        []chan Event
	stopCh        chan struct{}
	running       bool
	lastState     State
	completedSent bool
}

// NewPoller creates a Poller for the provided timer.
func NewPoller(timer *Timer, options PollerConfig) *Poller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Poller{
		timer:     timer,
		options:   options,
		lastState: StateIdle,
	}
}

// Timer returns the polled timer.
func (poller *Poller) Timer() *Timer {
	return poller.timer
}

// Subscribe registers a new observer channel.
func (poller *Poller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	poller.mu.Lock()
	poller.events = append(poller.events, ch)
	poller.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (poller *Poller) Start() {
	poller.mu.Lock()
	if poller.running {
		poller.mu.Unlock()
		return
	}
	poller.running = true
	poller.stopCh = make(chan struct{})
	stopCh := poller.stopCh
	poller.mu.Unlock()

	go poller.run(stopCh)
}

// Stop terminates the ticking loop and closes observers.
func (poller *Poller) Stop() {
	poller.mu.Lock()
	if !poller.running {
		poller.mu.Unlock()
		return
	}
	close(poller.stopCh)
	poller.running = false
	events := poller.events
	poller.events = nil
	poller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Poll reads the timer once and notifies observers. Hosts call it after a
// command so the view does not wait for the next tick.
func (poller *Poller) Poll(now time.Time) Snapshot {
	poller.mu.Lock()
	defer poller.mu.Unlock()

	// Snapshots are taken under poller.mu so polls publish in clock order.
	snapshot := poller.timer.Snapshot()

	poller.emitLocked(Event{Type: EventTick, State: snapshot.State, Snapshot: snapshot, At: now})

	if snapshot.State != poller.lastState {
		poller.lastState = snapshot.State
		poller.emitLocked(Event{Type: EventStateChange, State: snapshot.State, Snapshot: snapshot, At: now})
	}

	switch {
	case !snapshot.Completed:
		poller.completedSent = false
	case !poller.completedSent:
		poller.completedSent = true
		poller.emitLocked(Event{Type: EventCompleted, State: snapshot.State, Snapshot: snapshot, At: now})
	}
	return snapshot
}

func (poller *Poller) run(stopCh chan struct{}) {
	ticker := time.NewTicker(poller.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			poller.Poll(tickTime)
		}
	}
}

func (poller *Poller) emitLocked(event Event) {
	for _, ch := range poller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
