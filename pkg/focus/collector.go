package focus

import "github.com/focuswizard/go-focus-bridge/pkg/sensing"

// Collector merges the two sensing update streams into one coherent
// snapshot. Fields a given update does not report keep their last known
// value, so the snapshot is always the most recent view of every signal
// regardless of which stream delivered it.
//
// The collector owns the subject's blink estimator. It does no locking
// of its own: the snapshot, the blink history, and the classifier state
// form one synchronization domain owned by the Pipeline.
type Collector struct {
	snapshot Snapshot
	blink    *BlinkEstimator
}

// NewCollector creates a collector for one monitored subject.
func NewCollector() *Collector {
	return &Collector{blink: NewBlinkEstimator()}
}

// ApplyRefined folds a refined update into the snapshot. Pulse and
// breathing take the most recent sample of their series; face-level
// blink/talk detections update those flags and re-run the blink
// estimator. Face presence is only changed by frame updates.
func (c *Collector) ApplyRefined(u sensing.RefinedUpdate) {
	c.snapshot.TimestampUS = u.TimestampUS

	if n := len(u.Pulse); n > 0 {
		latest := u.Pulse[n-1]
		c.snapshot.PulseRateBPM = latest.Value
		c.snapshot.PulseConfidence = latest.Confidence
		c.snapshot.HasPulse = true
	}

	if n := len(u.Breathing); n > 0 {
		latest := u.Breathing[n-1]
		c.snapshot.BreathingRateBPM = latest.Value
		c.snapshot.BreathingConfidence = latest.Confidence
		c.snapshot.HasBreathing = true
	}

	if u.Face != nil {
		c.applyFaceDetections(u.Face)
	}
}

// ApplyFrame folds a per-frame update into the snapshot. A frame with no
// face clears face presence and gaze availability; a frame with a face
// updates blink/talk flags and attempts gaze estimation on the latest
// landmark set.
func (c *Collector) ApplyFrame(u sensing.FrameUpdate) {
	if u.Face == nil {
		c.snapshot.FaceDetected = false
		c.snapshot.HasGaze = false
		return
	}

	c.snapshot.FaceDetected = true
	c.applyFaceDetections(u.Face)

	if n := len(u.Face.Landmarks); n > 0 {
		if g, ok := EstimateGaze(u.Face.Landmarks[n-1].Points); ok {
			c.snapshot.GazeX = g.X
			c.snapshot.GazeY = g.Y
			c.snapshot.HasGaze = true
		}
	}
}

// applyFaceDetections updates the blink/talk flags from whichever series
// are present, most recent sample first. Empty series leave the flags
// untouched.
func (c *Collector) applyFaceDetections(f *sensing.FaceMetrics) {
	if n := len(f.Blinking); n > 0 {
		c.snapshot.IsBlinking = f.Blinking[n-1].Detected
		c.snapshot.BlinkRatePerMin = c.blink.Observe(c.snapshot.IsBlinking)
	}
	if n := len(f.Talking); n > 0 {
		c.snapshot.IsTalking = f.Talking[n-1].Detected
	}
}

// Snapshot returns a copy of the current snapshot. Callers running
// concurrently with updates must hold the pipeline's lock.
func (c *Collector) Snapshot() Snapshot {
	return c.snapshot
}
