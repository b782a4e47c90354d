package analytics

import "time"

// Clock supplies the current time to the engine.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. Used by tests and by callers
// that need reproducible reports.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
