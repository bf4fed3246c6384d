package focus

import (
	"sync"

	"github.com/google/uuid"

	"github.com/focuswizard/go-focus-bridge/internal/metrics"
	"github.com/focuswizard/go-focus-bridge/pkg/sensing"
)

// Record types on the emitter stream.
const (
	RecordMetrics = "metrics"
	RecordEdge    = "edge"
	RecordFocus   = "focus"
)

// Sink receives the bridge's output records in processing order.
// *emitter.Emitter satisfies it.
type Sink interface {
	Emit(kind string, payload any) error
}

// Broadcaster receives each focus record for fan-out to dashboard
// clients. Optional.
type Broadcaster interface {
	BroadcastFocus(rec FocusRecord)
}

// Pipeline binds one subject's collector and analyzer to the two sensing
// callback streams. Each update is applied, reported, and classified
// synchronously inside the triggering callback, so records leave in the
// order updates were processed.
//
// The two streams may fire concurrently; the pipeline's mutex is the
// single exclusion boundary over the snapshot, the blink history, and
// the analyzer's face-absence tracker. Nothing inside the critical
// section blocks on I/O beyond the line write itself.
type Pipeline struct {
	mu        sync.Mutex
	subjectID string
	collector *Collector
	analyzer  *Analyzer
	sink      Sink
	broadcast Broadcaster

	last    Result
	hasLast bool
}

var _ sensing.Handler = (*Pipeline)(nil)

// NewPipeline creates a pipeline for one monitored subject.
func NewPipeline(thresholds Thresholds, sink Sink) *Pipeline {
	return &Pipeline{
		subjectID: uuid.NewString(),
		collector: NewCollector(),
		analyzer:  NewAnalyzer(thresholds),
		sink:      sink,
	}
}

// SetBroadcaster attaches an optional fan-out for focus records.
// Must be called before updates start flowing.
func (p *Pipeline) SetBroadcaster(b Broadcaster) {
	p.broadcast = b
}

// SubjectID returns the subject identifier stamped into focus records.
func (p *Pipeline) SubjectID() string {
	return p.subjectID
}

// HandleRefined processes one refined update: merge, report the raw
// fields, classify, report the classification.
func (p *Pipeline) HandleRefined(u sensing.RefinedUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	metrics.UpdatesTotal.WithLabelValues("refined").Inc()

	p.collector.ApplyRefined(u)
	p.sink.Emit(RecordMetrics, newRefinedRecord(p.collector.Snapshot()))
	p.classify()
}

// HandleFrame processes one per-frame update.
func (p *Pipeline) HandleFrame(u sensing.FrameUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	metrics.UpdatesTotal.WithLabelValues("frame").Inc()

	p.collector.ApplyFrame(u)
	p.sink.Emit(RecordEdge, newEdgeRecord(p.collector.Snapshot()))
	p.classify()
}

// classify runs the analyzer on the current snapshot and reports the
// result. Callers must hold p.mu.
func (p *Pipeline) classify() {
	result := p.analyzer.Analyze(p.collector.Snapshot())
	p.last = result
	p.hasLast = true

	metrics.ClassificationsTotal.WithLabelValues(result.State.String()).Inc()
	metrics.FocusScore.Set(result.Score)

	rec := newFocusRecord(p.subjectID, result)
	p.sink.Emit(RecordFocus, rec)
	if p.broadcast != nil {
		p.broadcast.BroadcastFocus(rec)
	}
}

// Latest returns the most recent classification, if any update has been
// processed yet.
func (p *Pipeline) Latest() (Result, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.hasLast
}
