package session

import (
	"fmt"
	"time"
)

// Caption describes the snapshot state for display under the clock.
func (snapshot Snapshot) Caption() string {
	switch snapshot.State {
	case StateRunning:
		return "Ripening"
	case StateOvertime:
		return "Overtime +" + FormatClock(snapshot.Elapsed-snapshot.Goal)
	case StateStopped:
		return "Paused"
	case StateCompleted:
		return "Ripe!"
	default:
		return "Ready"
	}
}

// Summary renders the tally as a single line.
func (tally *Tally) Summary() string {
	return summaryText(tally.Count(), tally.TotalFocus())
}

func summaryText(count int, focus time.Duration) string {
	if focus <= 0 {
		return fmt.Sprintf("Pomodorini picked: %d", count)
	}
	return fmt.Sprintf("Pomodorini picked: %d (%s focused)", count, FormatClock(focus))
}
