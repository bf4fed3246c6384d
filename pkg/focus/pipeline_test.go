package focus

import (
	"testing"

	"github.com/focuswizard/go-focus-bridge/pkg/sensing"
)

type capturedRecord struct {
	kind    string
	payload any
}

type captureSink struct {
	records []capturedRecord
}

func (s *captureSink) Emit(kind string, payload any) error {
	s.records = append(s.records, capturedRecord{kind: kind, payload: payload})
	return nil
}

func (s *captureSink) kinds() []string {
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.kind
	}
	return out
}

func TestPipeline_RefinedEmitsMetricsThenFocus(t *testing.T) {
	sink := &captureSink{}
	p := NewPipeline(DefaultThresholds(), sink)

	p.HandleRefined(sensing.RefinedUpdate{
		TimestampUS: 42,
		Pulse:       []sensing.Measurement{{Value: 75, Confidence: 0.9}},
	})

	kinds := sink.kinds()
	if len(kinds) != 2 || kinds[0] != RecordMetrics || kinds[1] != RecordFocus {
		t.Fatalf("expected [metrics focus], got %v", kinds)
	}

	metrics, ok := sink.records[0].payload.(RefinedRecord)
	if !ok {
		t.Fatalf("metrics payload has wrong type: %T", sink.records[0].payload)
	}
	if metrics.PulseRateBPM != 75 || !metrics.HasPulse || metrics.TimestampUS != 42 {
		t.Errorf("unexpected metrics record: %+v", metrics)
	}
}

func TestPipeline_FrameEmitsEdgeThenFocus(t *testing.T) {
	sink := &captureSink{}
	p := NewPipeline(DefaultThresholds(), sink)

	p.HandleFrame(sensing.FrameUpdate{
		Face: &sensing.FaceMetrics{
			Talking: []sensing.Detection{{Detected: true}},
		},
	})

	kinds := sink.kinds()
	if len(kinds) != 2 || kinds[0] != RecordEdge || kinds[1] != RecordFocus {
		t.Fatalf("expected [edge focus], got %v", kinds)
	}

	rec, ok := sink.records[1].payload.(FocusRecord)
	if !ok {
		t.Fatalf("focus payload has wrong type: %T", sink.records[1].payload)
	}
	if rec.State != StateTalking || rec.Score != 0.3 {
		t.Errorf("expected talking/0.3, got %s/%v", rec.State, rec.Score)
	}
	if rec.SubjectID != p.SubjectID() {
		t.Errorf("focus record subject %q, want %q", rec.SubjectID, p.SubjectID())
	}
	if !rec.FaceDetected || !rec.IsTalking {
		t.Errorf("focus record should carry the snapshot: %+v", rec)
	}
}

func TestPipeline_RecordsKeepProcessingOrder(t *testing.T) {
	sink := &captureSink{}
	p := NewPipeline(DefaultThresholds(), sink)

	p.HandleFrame(sensing.FrameUpdate{Face: &sensing.FaceMetrics{}})
	p.HandleRefined(sensing.RefinedUpdate{TimestampUS: 1})
	p.HandleFrame(sensing.FrameUpdate{})

	want := []string{RecordEdge, RecordFocus, RecordMetrics, RecordFocus, RecordEdge, RecordFocus}
	kinds := sink.kinds()
	if len(kinds) != len(want) {
		t.Fatalf("expected %d records, got %d: %v", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("record %d: got %s, want %s (full order %v)", i, kinds[i], want[i], kinds)
		}
	}
}

func TestPipeline_Latest(t *testing.T) {
	sink := &captureSink{}
	p := NewPipeline(DefaultThresholds(), sink)

	if _, ok := p.Latest(); ok {
		t.Error("no classification should exist before the first update")
	}

	p.HandleFrame(sensing.FrameUpdate{Face: &sensing.FaceMetrics{}})

	r, ok := p.Latest()
	if !ok {
		t.Fatal("expected a classification after an update")
	}
	if r.State != StateFocused {
		t.Errorf("face present with no triggers should be focused, got %s", r.State)
	}
}

type captureBroadcaster struct {
	records []FocusRecord
}

func (b *captureBroadcaster) BroadcastFocus(rec FocusRecord) {
	b.records = append(b.records, rec)
}

func TestPipeline_Broadcasts(t *testing.T) {
	sink := &captureSink{}
	b := &captureBroadcaster{}
	p := NewPipeline(DefaultThresholds(), sink)
	p.SetBroadcaster(b)

	p.HandleFrame(sensing.FrameUpdate{Face: &sensing.FaceMetrics{}})
	p.HandleFrame(sensing.FrameUpdate{Face: &sensing.FaceMetrics{}})

	if len(b.records) != 2 {
		t.Fatalf("expected 2 broadcast records, got %d", len(b.records))
	}
	if b.records[0].State != StateFocused {
		t.Errorf("unexpected broadcast state %s", b.records[0].State)
	}
}
