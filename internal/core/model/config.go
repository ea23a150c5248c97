package model

import "time"

// MaxGoalMinutes bounds a single Pomodorino to one day.
const MaxGoalMinutes = 24 * 60

// SessionConfig contains the settings a single Pomodorino is created with.
type SessionConfig struct {
	GoalMinutes    int
	AllowsOvertime bool
}

// ValidGoal reports whether GoalMinutes lies in (0, MaxGoalMinutes].
func (config SessionConfig) ValidGoal() bool {
	return config.GoalMinutes > 0 && config.GoalMinutes <= MaxGoalMinutes
}

// GoalDuration returns the configured goal as a duration.
func (config SessionConfig) GoalDuration() time.Duration {
	return time.Duration(config.GoalMinutes) * time.Minute
}
