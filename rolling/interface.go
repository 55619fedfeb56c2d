package rolling

import (
	"sync"
	"time"
)

// Clock is an interface that defines a pluggable clock (as opposed to
// using the `time` package directly). This interface lists the only
// method that this package cares about. You can either use your own
// implementation, or use a another library such as github.com/facebookgo/clock
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// SystemClock is a simple clock using the time package
var SystemClock = systemClock{}

const (
	// DefaultWindowTime is the default time the window covers, 10 seconds.
	DefaultWindowTime time.Duration = time.Second * 10

	// DefaultWindowBuckets is the default number of buckets the window
	// is divided into, 10.
	DefaultWindowBuckets = 10
)

// Event indicates the type of observation recorded in a RollingNumber.
//
// Events come in two flavors. Counter events accumulate by addition and
// can be used with Increment, Add, RollingSum and CumulativeValue.
// Max updater events track a single stored value and can be used with
// UpdateRollingMax and RollingMax. Use IsCounter and IsMaxUpdater to
// tell them apart.
type Event int

// The events that a RollingNumber tracks. All of them are counter
// events except for ThreadMaxActive, which is a max updater event.
const (
	Success Event = iota + 1
	Failure
	Timeout
	ShortCircuited
	ThreadPoolRejected
	SemaphoreRejected
	FallbackSuccess
	FallbackFailure
	FallbackRejection
	ExceptionThrown
	ThreadExecution
	Collapsed
	ResponseFromCache
	ThreadMaxActive
)

// Option is the interface used to provide optional arguments
type Option interface {
	Name() string
	Get() interface{}
}

// RollingNumber tracks counters (Increment) and set values
// (UpdateRollingMax) over a sliding time window.
//
// It is "rolling" in the sense that a window time is given (such as 10
// seconds) which is broken into buckets (10 by default), so that the 10
// second window doesn't empty out and restart every 10 seconds. Instead
// every second a new bucket is added and the oldest one dropped, so
// that 9 of the buckets remain and only the newest starts from scratch.
// Statistics are therefore gathered over a rolling 10 second window
// with data being added and dropped in 1 second intervals (or whatever
// granularity the arguments define) rather than each 10 second window
// starting at 0 again.
//
// Buckets that rotate out of the live window are folded into a
// CumulativeSum before being dropped, so all-time totals are never
// lost; only the rolling view forgets them.
type RollingNumber struct {
	clock      Clock
	windowTime time.Duration
	bucketTime time.Duration
	numBuckets int
	mutex      sync.Mutex
	buckets    *bucketRing
	cumulative *CumulativeSum
}

// Map represents a map of rolling numbers, keyed by name. Use it to
// keep one RollingNumber per guarded command.
type Map interface {
	Get(string) (*RollingNumber, bool)
	Set(string, *RollingNumber)
}

type simpleMap struct {
	mutex   sync.RWMutex
	numbers map[string]*RollingNumber
}
