package sensing

import (
	"testing"
)

type recordingHandler struct {
	refined []RefinedUpdate
	frames  []FrameUpdate
}

func (h *recordingHandler) HandleRefined(u RefinedUpdate) { h.refined = append(h.refined, u) }
func (h *recordingHandler) HandleFrame(u FrameUpdate)     { h.frames = append(h.frames, u) }

func TestDispatch_Refined(t *testing.T) {
	env, err := ParseEnvelope([]byte(`{
		"type": "refined",
		"data": {
			"timestamp_us": 1234,
			"pulse": [{"time": 1.0, "value": 72.5, "confidence": 0.9}],
			"breathing": [{"time": 1.0, "value": 14.0, "confidence": 0.8}]
		}
	}`))
	if err != nil {
		t.Fatal(err)
	}

	h := &recordingHandler{}
	if err := Dispatch(env, h); err != nil {
		t.Fatal(err)
	}

	if len(h.refined) != 1 {
		t.Fatalf("expected 1 refined update, got %d", len(h.refined))
	}
	u := h.refined[0]
	if u.TimestampUS != 1234 {
		t.Errorf("timestamp: got %d", u.TimestampUS)
	}
	if len(u.Pulse) != 1 || u.Pulse[0].Value != 72.5 || u.Pulse[0].Confidence != 0.9 {
		t.Errorf("pulse samples not decoded: %+v", u.Pulse)
	}
}

func TestDispatch_FrameWithFace(t *testing.T) {
	env, err := ParseEnvelope([]byte(`{
		"type": "frame",
		"data": {
			"face": {
				"blinking": [{"time": 2.0, "detected": true}],
				"landmarks": [{"time": 2.0, "points": [{"x": 1, "y": 2, "z": 3}]}]
			}
		}
	}`))
	if err != nil {
		t.Fatal(err)
	}

	h := &recordingHandler{}
	if err := Dispatch(env, h); err != nil {
		t.Fatal(err)
	}

	if len(h.frames) != 1 {
		t.Fatalf("expected 1 frame update, got %d", len(h.frames))
	}
	face := h.frames[0].Face
	if face == nil {
		t.Fatal("face payload missing")
	}
	if len(face.Blinking) != 1 || !face.Blinking[0].Detected {
		t.Errorf("blink detection not decoded: %+v", face.Blinking)
	}
	if len(face.Landmarks) != 1 || face.Landmarks[0].Points[0].X != 1 {
		t.Errorf("landmarks not decoded: %+v", face.Landmarks)
	}
}

func TestDispatch_FrameWithoutFace(t *testing.T) {
	env, err := ParseEnvelope([]byte(`{"type":"frame","data":{}}`))
	if err != nil {
		t.Fatal(err)
	}

	h := &recordingHandler{}
	if err := Dispatch(env, h); err != nil {
		t.Fatal(err)
	}
	if len(h.frames) != 1 || h.frames[0].Face != nil {
		t.Errorf("expected one faceless frame update, got %+v", h.frames)
	}
}

func TestDispatch_UnknownType(t *testing.T) {
	env, err := ParseEnvelope([]byte(`{"type":"telemetry","data":{}}`))
	if err != nil {
		t.Fatal(err)
	}

	h := &recordingHandler{}
	if err := Dispatch(env, h); err == nil {
		t.Error("expected error for unknown envelope type")
	}
	if len(h.refined)+len(h.frames) != 0 {
		t.Error("unknown envelope must not dispatch")
	}
}

func TestParseEnvelope_Malformed(t *testing.T) {
	if _, err := ParseEnvelope([]byte(`{"type":`)); err == nil {
		t.Error("expected parse error")
	}
}
