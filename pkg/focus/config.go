package focus

import "time"

// Thresholds holds all tunable parameters for attention classification.
// Each is independently overridable from the command line.
type Thresholds struct {
	// Blink rate: normal is 15-20/min; above this suggests drowsiness
	BlinkRateDrowsy float64 `json:"blink_rate_drowsy"`

	// Pulse: resting is 60-100 BPM; elevated suggests stress
	PulseStressed float64 `json:"pulse_stressed"`

	// Breathing: normal is 12-20/min; elevated suggests stress/anxiety
	BreathingStressed float64 `json:"breathing_stressed"`

	// Gaze: deviation magnitude above which the user is distracted
	GazeDistraction float64 `json:"gaze_distraction"`

	// How long without a face before marking AWAY
	FaceAbsenceTimeout time.Duration `json:"face_absence_timeout"`
}

// DefaultThresholds returns the recommended configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BlinkRateDrowsy:    25.0,
		PulseStressed:      100.0,
		BreathingStressed:  22.0,
		GazeDistraction:    0.3,
		FaceAbsenceTimeout: 3 * time.Second,
	}
}

// SensitiveThresholds returns a configuration that flags degraded states
// earlier. Useful for demos where state changes should be visible fast.
func SensitiveThresholds() Thresholds {
	t := DefaultThresholds()
	t.BlinkRateDrowsy = 20.0
	t.PulseStressed = 90.0
	t.BreathingStressed = 20.0
	t.GazeDistraction = 0.2
	t.FaceAbsenceTimeout = 2 * time.Second
	return t
}

// RelaxedThresholds returns a configuration that tolerates more signal
// noise before leaving FOCUSED.
func RelaxedThresholds() Thresholds {
	t := DefaultThresholds()
	t.BlinkRateDrowsy = 30.0
	t.PulseStressed = 110.0
	t.BreathingStressed = 25.0
	t.GazeDistraction = 0.4
	t.FaceAbsenceTimeout = 5 * time.Second
	return t
}
