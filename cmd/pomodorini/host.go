package main

import (
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"pomodorini/internal/core/session"
	"pomodorini/internal/ui/preferences"
	"pomodorini/internal/ui/tomato"
	"pomodorini/internal/ui/tray"
)

// host owns the current Pomodorino and keeps the views in sync with it.
type host struct {
	mu     sync.Mutex
	poller *session.Poller
	view   *tomato.Window
	tray   *tray.Manager
	tally  *session.Tally
	logger *slog.Logger
	clock  session.Clock
}

func newHost(view *tomato.Window, tally *session.Tally, logger *slog.Logger) *host {
	return &host{view: view, tally: tally, logger: logger}
}

// Load replaces the current Pomodorino with one built from settings.
func (h *host) Load(settings preferences.Settings) error {
	timer, err := session.New(settings.SessionConfig(), session.Config{Clock: h.clock})
	if err != nil {
		return err
	}
	poller := session.NewPoller(timer, session.PollerConfig{TickInterval: settings.TickInterval})
	events := poller.Subscribe(8)

	h.mu.Lock()
	previous := h.poller
	h.poller = poller
	h.mu.Unlock()

	if previous != nil {
		previous.Timer().Stop()
		previous.Stop()
	}

	go h.consume(poller, events)
	poller.Start()
	h.logger.Info("pomodorino ready", "goal", timer.Goal(), "overtime", timer.AllowsOvertime())
	h.refresh()
	return nil
}

// SetTray attaches the desktop tray.
func (h *host) SetTray(manager *tray.Manager) {
	h.mu.Lock()
	h.tray = manager
	h.mu.Unlock()
	h.refresh()
}

func (h *host) Start() {
	h.current().Timer().Start()
	h.refresh()
}

func (h *host) Stop() {
	h.current().Timer().Stop()
	h.refresh()
}

func (h *host) Reset() {
	h.current().Timer().Reset()
	h.refresh()
}

func (h *host) Toggle() {
	if h.current().Timer().IsRunning() {
		h.Stop()
		return
	}
	h.Start()
}

// Close stops the timer and the polling loop.
func (h *host) Close() {
	poller := h.current()
	if poller == nil {
		return
	}
	poller.Timer().Stop()
	poller.Stop()
}

func (h *host) current() *session.Poller {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.poller
}

func (h *host) refresh() {
	if poller := h.current(); poller != nil {
		poller.Poll(time.Now())
	}
}

func (h *host) consume(source *session.Poller, events <-chan session.Event) {
	for event := range events {
		h.handle(source, event)
	}
}

// handle applies one event. Events from a poller replaced by Load are
// dropped so a stale tick cannot overwrite the new Pomodorino.
func (h *host) handle(source *session.Poller, event session.Event) {
	if h.current() != source {
		return
	}
	switch event.Type {
	case session.EventTick:
		h.render(event.Snapshot)
	case session.EventStateChange:
		h.logger.Debug("pomodorino state", "state", event.State, "elapsed", event.Snapshot.Elapsed)
	case session.EventCompleted:
		entry := h.tally.Record(event.Snapshot)
		h.logger.Info("pomodorino picked", "id", entry.ID, "elapsed", entry.Elapsed, "count", h.tally.Count())
		summary := h.tally.Summary()
		fyne.Do(func() {
			h.view.SetTally(summary)
		})
	}
}

func (h *host) render(snapshot session.Snapshot) {
	h.view.Update(snapshot)

	h.mu.Lock()
	manager := h.tray
	h.mu.Unlock()
	if manager == nil {
		return
	}
	fyne.Do(func() {
		manager.SetStatus(snapshot.FormattedTime() + " " + snapshot.Caption())
		manager.SetRunning(snapshot.Running)
	})
}
