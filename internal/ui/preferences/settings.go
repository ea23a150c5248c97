package preferences

import (
	"time"

	"pomodorini/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	GoalMinutes    int
	AllowsOvertime bool
	TickInterval   time.Duration
}

// DefaultSettings returns default settings for Pomodorini.
func DefaultSettings() Settings {
	return Settings{
		GoalMinutes:    25,
		AllowsOvertime: false,
		TickInterval:   time.Second,
	}
}

// SessionConfig converts settings to a SessionConfig.
func (settings Settings) SessionConfig() model.SessionConfig {
	return model.SessionConfig{
		GoalMinutes:    settings.GoalMinutes,
		AllowsOvertime: settings.AllowsOvertime,
	}
}
