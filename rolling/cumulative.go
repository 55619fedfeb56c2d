package rolling

// CumulativeSum keeps the running totals of every bucket that has
// rotated out of the live window. It has the same counter-per-event
// shape as a Bucket but no window start, and lives for the lifetime of
// the RollingNumber that owns it.
type CumulativeSum struct {
	adders      map[Event]*LongAdder
	maxUpdaters map[Event]*LongMaxUpdater
}

func newCumulativeSum() *CumulativeSum {
	adders, maxUpdaters := newCounterTable()
	return &CumulativeSum{
		adders:      adders,
		maxUpdaters: maxUpdaters,
	}
}

// AddBucket folds a retired bucket into the running totals. Counter
// events are added; max updater events are overwritten with the
// bucket's stored value (last write wins, same as LongMaxUpdater).
func (c *CumulativeSum) AddBucket(b *Bucket) {
	for _, e := range allEvents {
		if e.IsCounter() {
			c.adders[e].Add(b.adders[e].Sum())
			continue
		}
		c.maxUpdaters[e].Update(b.maxUpdaters[e].Max())
	}
}

// Get returns the accumulated value for the given event.
func (c *CumulativeSum) Get(event Event) (int64, error) {
	if event.IsCounter() {
		return c.adders[event].Sum(), nil
	}
	if event.IsMaxUpdater() {
		return c.maxUpdaters[event].Max(), nil
	}
	return 0, &eventTypeErr{event: event, want: wantKnown}
}

// Adder returns the accumulated counter for the given event. It fails
// if the event is not a counter event.
func (c *CumulativeSum) Adder(event Event) (*LongAdder, error) {
	if !event.IsCounter() {
		return nil, &eventTypeErr{event: event, want: wantCounter}
	}
	return c.adders[event], nil
}

// MaxUpdater returns the max updater for the given event. It fails if
// the event is not a max updater event.
func (c *CumulativeSum) MaxUpdater(event Event) (*LongMaxUpdater, error) {
	if !event.IsMaxUpdater() {
		return nil, &eventTypeErr{event: event, want: wantMaxUpdater}
	}
	return c.maxUpdaters[event], nil
}
