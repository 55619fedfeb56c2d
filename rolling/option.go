package rolling

import "time"

type option struct {
	name  string
	value interface{}
}

func (o *option) Name() string {
	return o.name
}

func (o *option) Get() interface{} {
	return o.value
}

// WithClock is used to specify the clock used by the rolling number.
// Normally, this is only used for testing
func WithClock(v Clock) Option {
	return &option{name: "Clock", value: v}
}

// WithWindowTime is used to specify the time the whole window covers.
func WithWindowTime(v time.Duration) Option {
	return &option{name: "WindowTime", value: v}
}

// WithWindowBuckets is used to specify the number of buckets the
// window is divided into.
func WithWindowBuckets(v int) Option {
	return &option{name: "WindowBuckets", value: v}
}
