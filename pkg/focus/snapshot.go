package focus

// Snapshot is everything currently known about the monitored subject.
// Fields are updated independently by the two sensing update sources and
// keep their last known value when an update does not report them.
// Presence flags start false and flip true when the first sample of the
// corresponding signal arrives.
type Snapshot struct {
	// Cardiac
	PulseRateBPM    float64 `json:"pulse_rate_bpm"`
	PulseConfidence float64 `json:"pulse_confidence"`
	HasPulse        bool    `json:"has_pulse"`

	// Respiratory
	BreathingRateBPM    float64 `json:"breathing_rate_bpm"`
	BreathingConfidence float64 `json:"breathing_confidence"`
	HasBreathing        bool    `json:"has_breathing"`

	// Facial
	FaceDetected    bool    `json:"face_detected"`
	IsBlinking      bool    `json:"is_blinking"`
	IsTalking       bool    `json:"is_talking"`
	BlinkRatePerMin float64 `json:"blink_rate_per_min"`

	// Gaze: deviation from forward-facing, nominally in [-1, 1] but not
	// clamped; extreme head poses can exceed the range.
	GazeX   float64 `json:"gaze_x"`
	GazeY   float64 `json:"gaze_y"`
	HasGaze bool    `json:"has_gaze"`

	// Capture timestamp of the most recent refined update (microseconds).
	TimestampUS int64 `json:"timestamp_us"`
}

// Result is one classifier output: the state, the focus score in
// [0.0, 1.0], and the snapshot the decision was made from.
type Result struct {
	State    State
	Score    float64
	Snapshot Snapshot
}
