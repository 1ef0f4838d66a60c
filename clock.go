package memo

import "time"

// Clock supplies the engine's run timestamps. Tests substitute a fake to
// pin provenance.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
