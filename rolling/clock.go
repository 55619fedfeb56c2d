package rolling

import "time"

func (c systemClock) Now() time.Time {
	return time.Now()
}
