// Package term renders a Pomodorino in the terminal with bubbletea.
package term

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodorini/internal/core/ripeness"
	"pomodorini/internal/core/session"
)

const maxBarWidth = 48

// TickMsg asks the model to poll its timer.
type TickMsg time.Time

// Options configures a Model.
type Options struct {
	TickInterval time.Duration
	Mapper       *ripeness.Mapper
	Tally        *session.Tally
	Logger       *slog.Logger
}

// Model is the bubbletea host for a single Pomodorino.
type Model struct {
	poller   *session.Poller
	events   <-chan session.Event
	tally    *session.Tally
	mapper   *ripeness.Mapper
	logger   *slog.Logger
	interval time.Duration
	keys     KeyMap
	help     help.Model
	bar      progress.Model
	snapshot session.Snapshot
	tint     lipgloss.Color
	quitting bool
}

// NewModel creates a terminal host around timer.
func NewModel(timer *session.Timer, options Options) Model {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Mapper == nil {
		options.Mapper = ripeness.Default()
	}
	if options.Tally == nil {
		options.Tally = session.NewTally(nil)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	poller := session.NewPoller(timer, session.PollerConfig{TickInterval: options.TickInterval})
	model := Model{
		poller:   poller,
		events:   poller.Subscribe(8),
		tally:    options.Tally,
		mapper:   options.Mapper,
		logger:   options.Logger,
		interval: options.TickInterval,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		bar:      progress.New(progress.WithSolidFill(string(colorNeutral)), progress.WithWidth(maxBarWidth)),
		tint:     colorNeutral,
	}
	model.refresh(time.Now())
	return model
}

// Init starts the polling cadence.
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update handles ticks, keys and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.refresh(time.Time(msg))
		return m, tick(m.interval)
	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > maxBarWidth {
			width = maxBarWidth
		}
		if width < 10 {
			width = 10
		}
		m.bar.Width = width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	timer := m.poller.Timer()
	switch {
	case key.Matches(msg, m.keys.Quit):
		timer.Stop()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if m.snapshot.Running {
			timer.Stop()
			m.logger.Debug("pomodorino stopped", "elapsed", m.snapshot.Elapsed)
		} else {
			timer.Start()
			m.logger.Debug("pomodorino started", "goal", timer.Goal())
		}
	case key.Matches(msg, m.keys.Reset):
		timer.Reset()
		m.logger.Debug("pomodorino reset")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
	m.refresh(time.Now())
	return m, nil
}

// Snapshot returns the last polled timer state.
func (m Model) Snapshot() session.Snapshot {
	return m.snapshot
}

// Tally returns the completed-session tally.
func (m Model) Tally() *session.Tally {
	return m.tally
}

func (m *Model) refresh(now time.Time) {
	m.snapshot = m.poller.Poll(now)
	for drained := false; !drained; {
		select {
		case event := <-m.events:
			if event.Type == session.EventCompleted {
				entry := m.tally.Record(event.Snapshot)
				m.logger.Info("pomodorino picked", "id", entry.ID, "elapsed", entry.Elapsed, "count", m.tally.Count())
			}
		default:
			drained = true
		}
	}

	hex, err := m.mapper.Hex(m.snapshot.Ripeness)
	if err != nil {
		m.logger.Warn("ripeness colour fallback", "progress", m.snapshot.Ripeness, "error", err)
		m.tint = colorNeutral
	} else {
		m.tint = lipgloss.Color(hex)
	}
	m.bar.FullColor = string(m.tint)
}

// View renders the tomato.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	fruitStyle := lipgloss.NewStyle().Foreground(m.tint).Bold(true)
	fruit := make([]string, 0, len(fruitArt)+1)
	fruit = append(fruit, stemStyle.Render(stemArt))
	for _, line := range fruitArt {
		fruit = append(fruit, fruitStyle.Render(line))
	}

	barProgress := m.snapshot.Progress
	if barProgress > 1 {
		barProgress = 1
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Pomodorini"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(fruit, "\n"))
	b.WriteString("\n\n")
	b.WriteString(clockStyle.Foreground(m.tint).Render(m.snapshot.FormattedTime()))
	b.WriteString(captionStyle.Render(m.snapshot.Caption()))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(barProgress))
	b.WriteString("\n\n")
	b.WriteString(tallyStyle.Render(m.tally.Summary()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return appStyle.Render(b.String())
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}
