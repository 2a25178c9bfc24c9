package timeprovider

import "time"

// TimeProvider abstracts the clock so that time dependent values (e.g. object expiration) can be tested.
type TimeProvider interface {
	Now() time.Time
}

// CurrentTimeProvider is a 'TimeProvider' which returns the real wall clock time.
type CurrentTimeProvider struct{}

var _ TimeProvider = (*CurrentTimeProvider)(nil)

func (tp CurrentTimeProvider) Now() time.Time {
	return time.Now()
}
