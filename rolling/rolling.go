// Package rolling implements a time-windowed rolling statistics
// counter. This work is based on the rolling number used by
// Hystrix-style circuit breakers, with modifications to make the API
// more Go-ish and some possible bug fixes.
//
// A RollingNumber tracks discrete event counts and high-water-mark
// values over a fixed-duration sliding window (for example, the last
// 10 seconds), subdividing the window into fixed-size time buckets so
// that old data ages out incrementally rather than in a single reset.
// Buckets that rotate out of the live window are folded into a
// cumulative sum, so lifetime totals survive the rolling view.
//
// It is designed to back latency and availability instrumentation for
// a circuit breaker, but it carries no dependency on one: it only
// consumes a Clock and exposes read/write counter operations. Deciding
// open/closed policy, and performing the guarded call itself, belong
// to the caller.
package rolling

import (
	"time"

	pdebug "github.com/lestrrat-go/pdebug"
)

// New creates a RollingNumber with the specified clock, window time and
// bucket count. The window time must divide equally into the number of
// buckets: 10000ms/10 is ok, 10000ms/7 is not, and fails with an error
// that IsInvalidWindow matches.
func New(options ...Option) (*RollingNumber, error) {
	var n RollingNumber
	var windowTime time.Duration
	var windowBuckets int

	for _, option := range options {
		switch option.Name() {
		case "Clock":
			n.clock = option.Get().(Clock)
		case "WindowTime":
			windowTime = option.Get().(time.Duration)
		case "WindowBuckets":
			windowBuckets = option.Get().(int)
		}
	}

	if n.clock == nil {
		n.clock = SystemClock
	}

	if windowTime == 0 {
		windowTime = DefaultWindowTime
	}

	if windowBuckets == 0 {
		windowBuckets = DefaultWindowBuckets
	}

	if windowBuckets < 0 || windowTime <= 0 || windowTime.Milliseconds()%int64(windowBuckets) != 0 {
		return nil, &invalidWindowErr{windowTime: windowTime, buckets: windowBuckets}
	}

	n.windowTime = windowTime
	n.numBuckets = windowBuckets
	n.bucketTime = windowTime / time.Duration(windowBuckets)
	n.buckets = newBucketRing(windowBuckets)
	n.cumulative = newCumulativeSum()
	return &n, nil
}

// WindowTime returns the time the whole window covers.
func (n *RollingNumber) WindowTime() time.Duration {
	return n.windowTime
}

// BucketTime returns the time a single bucket covers.
func (n *RollingNumber) BucketTime() time.Duration {
	return n.bucketTime
}

// WindowBuckets returns the number of buckets the window is divided
// into.
func (n *RollingNumber) WindowBuckets() int {
	return n.numBuckets
}

// Increment adds 1 to the counter for the given event in the current
// bucket. The event must be a counter event.
func (n *RollingNumber) Increment(event Event) error {
	adder, err := n.current().Adder(event)
	if err != nil {
		return err
	}
	adder.Increment()
	return nil
}

// Add adds the given delta to the counter for the given event in the
// current bucket. The event must be a counter event.
func (n *RollingNumber) Add(event Event, v int64) error {
	adder, err := n.current().Adder(event)
	if err != nil {
		return err
	}
	adder.Add(v)
	return nil
}

// UpdateRollingMax stores the given value for the given event in the
// current bucket. The event must be a max updater event. The stored
// value is last-write-wins; see LongMaxUpdater.
func (n *RollingNumber) UpdateRollingMax(event Event, v int64) error {
	updater, err := n.current().MaxUpdater(event)
	if err != nil {
		return err
	}
	updater.Update(v)
	return nil
}

// RollingSum returns the sum recorded for the given event across every
// bucket currently in the live window. It does not include buckets
// that have already been folded into the cumulative sum; see
// CumulativeValue for those.
func (n *RollingNumber) RollingSum(event Event) (int64, error) {
	if !event.IsCounter() {
		return 0, &eventTypeErr{event: event, want: wantCounter}
	}

	var sum int64
	n.mutex.Lock()
	n.currentBucket()
	n.buckets.do(func(b *Bucket) {
		sum += b.adders[event].Sum()
	})
	n.mutex.Unlock()
	return sum, nil
}

// RollingMax returns the highest value stored for the given event
// across every bucket currently in the live window.
func (n *RollingNumber) RollingMax(event Event) (int64, error) {
	if !event.IsMaxUpdater() {
		return 0, &eventTypeErr{event: event, want: wantMaxUpdater}
	}

	var max int64
	n.mutex.Lock()
	n.currentBucket()
	n.buckets.do(func(b *Bucket) {
		if v := b.maxUpdaters[event].Max(); v > max {
			max = v
		}
	})
	n.mutex.Unlock()
	return max, nil
}

// CumulativeValue returns the all-time total for the given event,
// covering every bucket that has rotated out of the live window. It
// excludes the buckets still in the window, so callers wanting true
// lifetime totals must combine it with RollingSum.
func (n *RollingNumber) CumulativeValue(event Event) (int64, error) {
	n.mutex.Lock()
	n.currentBucket()
	n.mutex.Unlock()
	return n.cumulative.Get(event)
}

// Reset folds the newest bucket into the cumulative sum and empties
// the window.
func (n *RollingNumber) Reset() {
	if pdebug.Enabled {
		g := pdebug.Marker("RollingNumber.Reset")
		defer g.End()
	}

	n.mutex.Lock()
	n.reset()
	n.mutex.Unlock()
}

// reset assumes the caller holds n.mutex.
func (n *RollingNumber) reset() {
	if last := n.buckets.peekLast(); last != nil {
		n.cumulative.AddBucket(last)
	}
	n.buckets.clear()
}

// current resolves the bucket covering the clock's current reading,
// rotating the window as needed.
func (n *RollingNumber) current() *Bucket {
	n.mutex.Lock()
	b := n.currentBucket()
	n.mutex.Unlock()
	return b
}

// currentBucket returns the bucket that covers the current time,
// advancing the window as time passes: a new bucket is appended for
// each elapsed bucket interval, and the bucket it displaces is folded
// into the cumulative sum. When the caller has been idle for longer
// than the entire window, the window is reset and restarted from a
// single fresh bucket. currentBucket assumes that the caller holds
// n.mutex.
func (n *RollingNumber) currentBucket() *Bucket {
	now := n.clock.Now().UnixMilli()
	bucketMillis := n.bucketTime.Milliseconds()

	if last := n.buckets.peekLast(); last != nil && now < last.windowStart+bucketMillis {
		return last
	}

	if n.buckets.peekLast() == nil {
		b := newBucket(now)
		n.buckets.addLast(b)
		return b
	}

	for i := 0; i < n.numBuckets; i++ {
		last := n.buckets.peekLast()
		boundary := last.windowStart + bucketMillis
		if now < boundary {
			return last
		}

		if now-boundary > n.windowTime.Milliseconds() {
			if pdebug.Enabled {
				pdebug.Printf("window went stale, restarting from a fresh bucket")
			}
			n.reset()
			return n.currentBucket()
		}

		n.buckets.addLast(newBucket(boundary))
		n.cumulative.AddBucket(last)
	}
	return n.buckets.peekLast()
}
