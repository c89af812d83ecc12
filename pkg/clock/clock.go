// Package clock abstracts the current instant so every time-derived
// guard can be tested deterministically.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
