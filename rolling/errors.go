package rolling

import (
	"strconv"
	"time"
)

const (
	wantCounter    = "counter"
	wantMaxUpdater = "max updater"
	wantKnown      = "known"
)

type invalidWindowErr struct {
	windowTime time.Duration
	buckets    int
}

func (e *invalidWindowErr) Error() string {
	return "window time (" + e.windowTime.String() +
		") must divide equally into the number of buckets (" +
		strconv.Itoa(e.buckets) + ")"
}

func (e *invalidWindowErr) InvalidWindow() bool {
	return true
}

type eventTypeErr struct {
	event Event
	want  string
}

func (e *eventTypeErr) Error() string {
	return "event " + e.event.String() + " is not a " + e.want + " event"
}

func (e *eventTypeErr) EventTypeMismatch() bool {
	return true
}

type causer interface {
	Cause() error
}

type invalidWindower interface {
	InvalidWindow() bool
}

type eventTypeMismatcher interface {
	EventTypeMismatch() bool
}

// IsInvalidWindow returns true if the error is caused by a window
// configuration whose time does not divide equally into its buckets.
func IsInvalidWindow(err error) bool {
	for err != nil {
		if werr, ok := err.(invalidWindower); ok {
			return werr.InvalidWindow()
		}

		cerr, ok := err.(causer)
		if !ok {
			return false
		}
		err = cerr.Cause()
	}
	return false
}

// IsEventTypeMismatch returns true if the error is caused by using an
// event with an operation meant for the other event type, such as
// incrementing a max updater event.
func IsEventTypeMismatch(err error) bool {
	for err != nil {
		if eerr, ok := err.(eventTypeMismatcher); ok {
			return eerr.EventTypeMismatch()
		}

		cerr, ok := err.(causer)
		if !ok {
			return false
		}
		err = cerr.Cause()
	}
	return false
}
