package rolling

// Bucket holds the counters for one time slice of the rolling window.
// A counter is allocated for every known event up front, so lookups
// never allocate.
type Bucket struct {
	windowStart int64
	adders      map[Event]*LongAdder
	maxUpdaters map[Event]*LongMaxUpdater
}

func newCounterTable() (map[Event]*LongAdder, map[Event]*LongMaxUpdater) {
	adders := make(map[Event]*LongAdder)
	maxUpdaters := make(map[Event]*LongMaxUpdater)
	for _, e := range allEvents {
		if e.IsCounter() {
			adders[e] = &LongAdder{}
			continue
		}
		maxUpdaters[e] = &LongMaxUpdater{}
	}
	return adders, maxUpdaters
}

func newBucket(windowStart int64) *Bucket {
	adders, maxUpdaters := newCounterTable()
	return &Bucket{
		windowStart: windowStart,
		adders:      adders,
		maxUpdaters: maxUpdaters,
	}
}

// WindowStart returns the start of the time slice this bucket covers,
// in Unix milliseconds.
func (b *Bucket) WindowStart() int64 {
	return b.windowStart
}

// Get returns the current value recorded for the given event.
func (b *Bucket) Get(event Event) (int64, error) {
	if event.IsCounter() {
		return b.adders[event].Sum(), nil
	}
	if event.IsMaxUpdater() {
		return b.maxUpdaters[event].Max(), nil
	}
	return 0, &eventTypeErr{event: event, want: wantKnown}
}

// Adder returns the counter for the given event. It fails if the event
// is not a counter event.
func (b *Bucket) Adder(event Event) (*LongAdder, error) {
	if !event.IsCounter() {
		return nil, &eventTypeErr{event: event, want: wantCounter}
	}
	return b.adders[event], nil
}

// MaxUpdater returns the max updater for the given event. It fails if
// the event is not a max updater event.
func (b *Bucket) MaxUpdater(event Event) (*LongMaxUpdater, error) {
	if !event.IsMaxUpdater() {
		return nil, &eventTypeErr{event: event, want: wantMaxUpdater}
	}
	return b.maxUpdaters[event], nil
}
