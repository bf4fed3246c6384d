package focus

// Wire records emitted to the companion UI. Field names are fixed: the
// UI reads them straight off the NDJSON stream.

// RefinedRecord reports the raw fields extracted from one refined
// update, for observability alongside the focus record.
type RefinedRecord struct {
	TimestampUS      int64   `json:"timestamp_us"`
	PulseRateBPM     float64 `json:"pulse_rate_bpm"`
	HasPulse         bool    `json:"has_pulse"`
	PulseConfidence  float64 `json:"pulse_confidence"`
	BreathingRateBPM float64 `json:"breathing_rate_bpm"`
	HasBreathing     bool    `json:"has_breathing"`
}

// EdgeRecord reports the raw facial fields extracted from one frame
// update.
type EdgeRecord struct {
	FaceDetected    bool    `json:"face_detected"`
	IsBlinking      bool    `json:"is_blinking"`
	BlinkRatePerMin float64 `json:"blink_rate_per_min"`
	IsTalking       bool    `json:"is_talking"`
	GazeX           float64 `json:"gaze_x"`
	GazeY           float64 `json:"gaze_y"`
	HasGaze         bool    `json:"has_gaze"`
}

// FocusRecord is the classifier output plus the full snapshot it was
// produced from.
type FocusRecord struct {
	State     State   `json:"state"`
	Score     float64 `json:"focus_score"`
	SubjectID string  `json:"subject_id"`
	Snapshot
}

func newRefinedRecord(s Snapshot) RefinedRecord {
	return RefinedRecord{
		TimestampUS:      s.TimestampUS,
		PulseRateBPM:     s.PulseRateBPM,
		HasPulse:         s.HasPulse,
		PulseConfidence:  s.PulseConfidence,
		BreathingRateBPM: s.BreathingRateBPM,
		HasBreathing:     s.HasBreathing,
	}
}

func newEdgeRecord(s Snapshot) EdgeRecord {
	return EdgeRecord{
		FaceDetected:    s.FaceDetected,
		IsBlinking:      s.IsBlinking,
		BlinkRatePerMin: s.BlinkRatePerMin,
		IsTalking:       s.IsTalking,
		GazeX:           s.GazeX,
		GazeY:           s.GazeY,
		HasGaze:         s.HasGaze,
	}
}

func newFocusRecord(subjectID string, r Result) FocusRecord {
	return FocusRecord{
		State:     r.State,
		Score:     r.Score,
		SubjectID: subjectID,
		Snapshot:  r.Snapshot,
	}
}
