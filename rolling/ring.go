package rolling

import "container/ring"

// bucketRing is a fixed-capacity FIFO of buckets ordered oldest to
// newest. Adding past capacity silently overwrites the oldest bucket.
type bucketRing struct {
	ring  *ring.Ring
	count int
}

func newBucketRing(capacity int) *bucketRing {
	return &bucketRing{ring: ring.New(capacity)}
}

// peekLast returns the most recently added bucket without removing it,
// or nil if the ring is empty.
func (r *bucketRing) peekLast() *Bucket {
	if r.count == 0 {
		return nil
	}
	return r.ring.Value.(*Bucket)
}

// addLast appends the bucket as the newest entry, dropping the oldest
// one when the ring is already at capacity.
func (r *bucketRing) addLast(b *Bucket) {
	r.ring = r.ring.Next()
	if r.ring.Value == nil {
		r.count++
	}
	r.ring.Value = b
}

// clear empties the ring.
func (r *bucketRing) clear() {
	for i := 0; i < r.ring.Len(); i++ {
		r.ring.Value = nil
		r.ring = r.ring.Next()
	}
	r.count = 0
}

// size reports the current occupancy, at most the configured capacity.
func (r *bucketRing) size() int {
	return r.count
}

// do calls fn for every bucket currently in the ring.
func (r *bucketRing) do(fn func(*Bucket)) {
	r.ring.Do(func(v interface{}) {
		if v == nil {
			return
		}
		fn(v.(*Bucket))
	})
}
