package clock

import "time"

// Clock abstracts time.Now so license checks and provisioning windows are
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
