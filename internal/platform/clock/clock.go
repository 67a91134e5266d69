package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports wall-clock time in the local zone. The ritual day is
// anchored to local midnight, so it must not normalize to UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
