package session

import (
	"fmt"
	"time"
)

// FormatClock renders a duration as MM:SS, flooring negatives at 00:00.
// Minutes are not wrapped into hours.
func FormatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value / time.Second)
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
