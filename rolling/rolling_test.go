package rolling_test

import (
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/lestrrat/go-rolling-stats/rolling"
	"github.com/stretchr/testify/assert"
)

func TestRollingNumber(t *testing.T) {
	c := clock.NewMock()
	n, err := rolling.New(
		rolling.WithClock(c),
		rolling.WithWindowTime(10*time.Second),
		rolling.WithWindowBuckets(10),
	)
	if !assert.NoError(t, err, "expected New to succeed") {
		return
	}

	for i := 0; i < 3; i++ {
		if !assert.NoError(t, n.Increment(rolling.Success), "expected Increment to succeed") {
			return
		}
	}
	assert.NoError(t, n.Increment(rolling.Failure))

	sum, err := n.RollingSum(rolling.Success)
	if assert.NoError(t, err, "expected RollingSum to succeed") {
		assert.Equal(t, int64(3), sum, "expected 3 successes in the window")
	}

	// Age the whole window out.
	c.Add(30 * time.Second)

	sum, err = n.RollingSum(rolling.Success)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(0), sum, "expected the rolling view to be empty")
	}

	v, err := n.CumulativeValue(rolling.Success)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(3), v, "expected the cumulative value to keep aged out counts")
	}
	v, err = n.CumulativeValue(rolling.Failure)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), v, "expected the cumulative value to keep aged out counts")
	}
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := rolling.New(
		rolling.WithWindowTime(10*time.Second),
		rolling.WithWindowBuckets(7),
	)
	if !assert.Error(t, err, "expected New to fail when 10000ms does not divide into 7 buckets") {
		return
	}
	assert.True(t, rolling.IsInvalidWindow(err), "expected an invalid window error")
	assert.False(t, rolling.IsEventTypeMismatch(err), "expected no event type mismatch")
}

func TestEventClassification(t *testing.T) {
	events := rolling.Events()
	assert.Len(t, events, 14, "expected 14 known events")

	var counters, maxUpdaters int
	for _, e := range events {
		if e.IsCounter() {
			counters++
		}
		if e.IsMaxUpdater() {
			maxUpdaters++
		}
		assert.False(t, e.IsCounter() && e.IsMaxUpdater(), "expected %s to have a single classification", e)
	}
	assert.Equal(t, 13, counters, "expected 13 counter events")
	assert.Equal(t, 1, maxUpdaters, "expected a single max updater event")

	assert.Equal(t, "thread-max-active", rolling.ThreadMaxActive.String())
	assert.Equal(t, "(unknown:99)", rolling.Event(99).String())

	assert.False(t, rolling.Event(99).IsCounter(), "expected unknown events to have no classification")
	assert.False(t, rolling.Event(99).IsMaxUpdater(), "expected unknown events to have no classification")
}

func TestMap(t *testing.T) {
	m := rolling.NewMap()

	_, ok := m.Get("fetch-user")
	assert.False(t, ok, "expected an empty map to have no entries")

	n, err := rolling.New()
	if !assert.NoError(t, err) {
		return
	}

	m.Set("fetch-user", n)
	got, ok := m.Get("fetch-user")
	if assert.True(t, ok, "expected the map to hold the rolling number") {
		assert.Equal(t, n, got)
	}
}
