package session

import "time"

// Clock abstracts wall-clock reads so timers can be driven by simulated time.
//
//go:generate mockgen -source=clock.go -destination=mock_clock_test.go -package=session
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }
