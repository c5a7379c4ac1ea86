package engine

import "time"

// Clock supplies capture times for produced events. Injected so tests can
// pin event timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock used in production.
func SystemClock() Clock { return systemClock{} }
