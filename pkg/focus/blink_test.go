package focus

import (
	"testing"
	"time"
)

func newTestBlinkEstimator() (*BlinkEstimator, *fakeClock) {
	clk := newFakeClock()
	e := NewBlinkEstimator()
	e.now = clk.Now
	return e, clk
}

func TestBlinkEstimator_NoBlinks(t *testing.T) {
	e, clk := newTestBlinkEstimator()

	for i := 0; i < 10; i++ {
		if rate := e.Observe(false); rate != 0 {
			t.Fatalf("call %d: expected rate 0, got %v", i, rate)
		}
		clk.Advance(time.Second)
	}
}

func TestBlinkEstimator_CountsRisingEdges(t *testing.T) {
	e, clk := newTestBlinkEstimator()

	// Three separate blinks: each is a rising edge
	var rate float64
	for i := 0; i < 3; i++ {
		rate = e.Observe(true)
		clk.Advance(200 * time.Millisecond)
		rate = e.Observe(false)
		clk.Advance(200 * time.Millisecond)
	}

	if rate != 3 {
		t.Errorf("expected rate 3 after three blinks, got %v", rate)
	}
}

func TestBlinkEstimator_HeldBlinkCountsOnce(t *testing.T) {
	e, clk := newTestBlinkEstimator()

	// One blink held across five consecutive observations
	var rate float64
	for i := 0; i < 5; i++ {
		rate = e.Observe(true)
		clk.Advance(100 * time.Millisecond)
	}

	if rate != 1 {
		t.Errorf("held blink should count once, got rate %v", rate)
	}
}

func TestBlinkEstimator_WindowEviction(t *testing.T) {
	e, clk := newTestBlinkEstimator()

	e.Observe(true)
	e.Observe(false)
	clk.Advance(30 * time.Second)
	if rate := e.Observe(true); rate != 2 {
		t.Fatalf("expected rate 2 with both onsets in window, got %v", rate)
	}
	e.Observe(false)

	// 35s later the first onset is 65s old and must have aged out
	clk.Advance(35 * time.Second)
	if rate := e.Observe(false); rate != 1 {
		t.Errorf("expected rate 1 after first onset aged out, got %v", rate)
	}

	// Another 30s and the second onset is gone too
	clk.Advance(30 * time.Second)
	if rate := e.Observe(false); rate != 0 {
		t.Errorf("expected rate 0 after all onsets aged out, got %v", rate)
	}
}

func TestBlinkEstimator_NonIncreasingWithoutOnsets(t *testing.T) {
	e, clk := newTestBlinkEstimator()

	for i := 0; i < 5; i++ {
		e.Observe(true)
		clk.Advance(time.Second)
		e.Observe(false)
		clk.Advance(time.Second)
	}

	prev := e.Observe(false)
	for i := 0; i < 20; i++ {
		clk.Advance(5 * time.Second)
		rate := e.Observe(false)
		if rate > prev {
			t.Fatalf("rate increased without a new onset: %v -> %v", prev, rate)
		}
		prev = rate
	}
	if prev != 0 {
		t.Errorf("expected rate to decay to 0, got %v", prev)
	}
}

func TestBlinkEstimator_EntryExactlyAtWindowEdgeKept(t *testing.T) {
	e, clk := newTestBlinkEstimator()

	e.Observe(true)
	clk.Advance(BlinkWindow)

	// Eviction drops entries strictly older than the cutoff
	if rate := e.Observe(false); rate != 1 {
		t.Errorf("entry exactly at window edge should survive, got rate %v", rate)
	}
}
