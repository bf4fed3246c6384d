package focus

import "time"

// BlinkWindow is the trailing window blink onsets are counted over.
// Because the window is 60 seconds, the raw count in the window is also
// the blinks-per-minute rate; changing the window would require scaling
// the returned count.
const BlinkWindow = 60 * time.Second

// BlinkEstimator converts instantaneous blink observations into a
// blinks-per-minute rate. Each monitored subject owns one instance; the
// estimator is not safe for concurrent use and relies on its owner's
// synchronization.
type BlinkEstimator struct {
	window       time.Duration
	onsets       []time.Time
	prevBlinking bool

	now func() time.Time // injectable for tests
}

// NewBlinkEstimator creates an estimator with the standard 60s window.
func NewBlinkEstimator() *BlinkEstimator {
	return &BlinkEstimator{
		window: BlinkWindow,
		now:    time.Now,
	}
}

// Observe records one blink observation and returns the current rate.
// Only the rising edge counts: a blink held across consecutive calls is
// one onset, not one per call. Entries age out of the trailing window on
// every call, so the returned rate is non-increasing between calls that
// add no onset. Always returns a non-negative value.
func (e *BlinkEstimator) Observe(blinking bool) float64 {
	now := e.now()

	if blinking && !e.prevBlinking {
		e.onsets = append(e.onsets, now)
	}
	e.prevBlinking = blinking

	cutoff := now.Add(-e.window)
	drop := 0
	for drop < len(e.onsets) && e.onsets[drop].Before(cutoff) {
		drop++
	}
	if drop > 0 {
		e.onsets = e.onsets[drop:]
	}

	return float64(len(e.onsets))
}
