package rolling

import "strconv"

var eventNames = map[Event]string{
	Success:            "success",
	Failure:            "failure",
	Timeout:            "timeout",
	ShortCircuited:     "short-circuited",
	ThreadPoolRejected: "thread-pool-rejected",
	SemaphoreRejected:  "semaphore-rejected",
	FallbackSuccess:    "fallback-success",
	FallbackFailure:    "fallback-failure",
	FallbackRejection:  "fallback-rejection",
	ExceptionThrown:    "exception-thrown",
	ThreadExecution:    "thread-execution",
	Collapsed:          "collapsed",
	ResponseFromCache:  "response-from-cache",
	ThreadMaxActive:    "thread-max-active",
}

var allEvents = []Event{
	Success,
	Failure,
	Timeout,
	ShortCircuited,
	ThreadPoolRejected,
	SemaphoreRejected,
	FallbackSuccess,
	FallbackFailure,
	FallbackRejection,
	ExceptionThrown,
	ThreadExecution,
	Collapsed,
	ResponseFromCache,
	ThreadMaxActive,
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "(unknown:" + strconv.Itoa(int(e)) + ")"
}

// IsCounter returns true if the event accumulates by addition. Counter
// events can be used with Increment, Add, RollingSum and
// CumulativeValue.
func (e Event) IsCounter() bool {
	_, ok := eventNames[e]
	return ok && !e.IsMaxUpdater()
}

// IsMaxUpdater returns true if the event tracks a single stored value.
// Max updater events can be used with UpdateRollingMax and RollingMax.
func (e Event) IsMaxUpdater() bool {
	return e == ThreadMaxActive
}

// Events returns every event that a RollingNumber tracks.
func Events() []Event {
	events := make([]Event, len(allEvents))
	copy(events, allEvents)
	return events
}
