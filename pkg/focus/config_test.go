package focus

import (
	"testing"
	"time"
)

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()

	if th.BlinkRateDrowsy != 25.0 {
		t.Errorf("expected BlinkRateDrowsy=25, got %v", th.BlinkRateDrowsy)
	}
	if th.PulseStressed != 100.0 {
		t.Errorf("expected PulseStressed=100, got %v", th.PulseStressed)
	}
	if th.BreathingStressed != 22.0 {
		t.Errorf("expected BreathingStressed=22, got %v", th.BreathingStressed)
	}
	if th.GazeDistraction != 0.3 {
		t.Errorf("expected GazeDistraction=0.3, got %v", th.GazeDistraction)
	}
	if th.FaceAbsenceTimeout != 3*time.Second {
		t.Errorf("expected FaceAbsenceTimeout=3s, got %v", th.FaceAbsenceTimeout)
	}
}

func TestThresholdVariants(t *testing.T) {
	def := DefaultThresholds()
	sensitive := SensitiveThresholds()
	relaxed := RelaxedThresholds()

	// Sensitive triggers degraded states earlier than default; relaxed later
	if sensitive.BlinkRateDrowsy >= def.BlinkRateDrowsy {
		t.Error("sensitive blink threshold should be below default")
	}
	if relaxed.BlinkRateDrowsy <= def.BlinkRateDrowsy {
		t.Error("relaxed blink threshold should be above default")
	}
	if sensitive.GazeDistraction >= def.GazeDistraction {
		t.Error("sensitive gaze threshold should be below default")
	}
	if relaxed.FaceAbsenceTimeout <= def.FaceAbsenceTimeout {
		t.Error("relaxed absence timeout should be above default")
	}
}

func TestStateWireNames(t *testing.T) {
	want := map[State]string{
		StateFocused:    "focused",
		StateDistracted: "distracted",
		StateDrowsy:     "drowsy",
		StateStressed:   "stressed",
		StateAway:       "away",
		StateTalking:    "talking",
		StateUnknown:    "unknown",
	}

	for state, name := range want {
		if state.String() != name {
			t.Errorf("state %v: wire name %q, want %q", state, state.String(), name)
		}
	}
}
