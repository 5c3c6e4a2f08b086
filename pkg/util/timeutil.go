package util

import "time"

// Clock returns the current time. Components hold one so tests can pin it.
type Clock func() time.Time

// NowUTC is the production Clock.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// MillisSince reports the elapsed time since start in whole milliseconds.
func MillisSince(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
