package rolling_test

import (
	"fmt"
	"time"

	"github.com/lestrrat/go-rolling-stats/rolling"
)

func Example() {
	// Track request outcomes over a rolling 10 second window,
	// broken into 1 second buckets
	num, err := rolling.New(
		rolling.WithClock(rolling.SystemClock),
		rolling.WithWindowTime(10*time.Second),
		rolling.WithWindowBuckets(10),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	// On the hot path, record what happened
	num.Increment(rolling.Success)
	num.Increment(rolling.Success)
	num.Increment(rolling.Success)
	num.Increment(rolling.Failure)

	// When computing health, read the rolling view
	failures, _ := num.RollingSum(rolling.Failure)
	successes, _ := num.RollingSum(rolling.Success)

	rate := float64(failures) / float64(failures+successes)
	fmt.Printf("error rate: %.2f\n", rate)
	// Output: error rate: 0.25
}
