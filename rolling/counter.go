package rolling

import "sync"

// LongAdder is a counter that can be incremented, decremented, and
// added to concurrently from multiple goroutines. Every mutation holds
// an exclusive lock for the duration of the read-modify-write.
type LongAdder struct {
	mutex sync.Mutex
	value int64
}

// Increment adds 1 to the counter.
func (a *LongAdder) Increment() {
	a.mutex.Lock()
	a.value++
	a.mutex.Unlock()
}

// Decrement subtracts 1 from the counter.
func (a *LongAdder) Decrement() {
	a.mutex.Lock()
	a.value--
	a.mutex.Unlock()
}

// Add adds the given delta to the counter.
func (a *LongAdder) Add(v int64) {
	a.mutex.Lock()
	a.value += v
	a.mutex.Unlock()
}

// Sum returns the current value of the counter. The value is consistent
// with some serialization of the concurrent operations on the counter,
// not necessarily the one issued last.
func (a *LongAdder) Sum() int64 {
	a.mutex.Lock()
	v := a.value
	a.mutex.Unlock()
	return v
}

// LongMaxUpdater stores a single value. Note that Update
// unconditionally overwrites the stored value: last write wins, a lower
// value written after a higher one replaces it. It behaves as a running
// maximum only when callers always write the current instantaneous
// peak.
type LongMaxUpdater struct {
	mutex sync.Mutex
	value int64
}

// Update stores the given value, replacing whatever was stored before.
func (m *LongMaxUpdater) Update(v int64) {
	m.mutex.Lock()
	m.value = v
	m.mutex.Unlock()
}

// Max returns the currently stored value.
func (m *LongMaxUpdater) Max() int64 {
	m.mutex.Lock()
	v := m.value
	m.mutex.Unlock()
	return v
}
