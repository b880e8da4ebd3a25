package time

import (
	"fmt"
	"time"
)

// Clock returns the current time, replaceable in tests.
type Clock func() time.Time

// Stopwatch measures the duration of a run.
type Stopwatch struct {
	clock Clock
	start time.Time
}

// Start starts a new stopwatch on the given clock.
func Start(clock Clock) Stopwatch {
	if clock == nil {
		clock = time.Now
	}
	return Stopwatch{
		clock: clock,
		start: clock(),
	}
}

// Started returns the start time.
func (s Stopwatch) Started() time.Time {
	return s.start
}

// Elapsed returns the duration since the start.
func (s Stopwatch) Elapsed() time.Duration {
	return s.clock().Sub(s.start)
}

// Format renders a duration as HH:MM:SS.ss
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, d.Seconds())
}
