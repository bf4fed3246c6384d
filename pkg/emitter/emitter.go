// Package emitter writes the bridge's NDJSON output stream: one JSON
// object per line, flushed per line. The companion UI reads the stream
// line-by-line off the process pipe.
//
// Record envelope: {"type":"...","data":{...}}. Types carried here are
// "status", "error" and "ready"; the pipeline adds "metrics", "edge"
// and "focus".
package emitter

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Emitter is a mutex-guarded line writer. Multiple sensing callbacks may
// fire concurrently; each record is written as one atomic line.
type Emitter struct {
	mu sync.Mutex
	w  io.Writer
}

type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// New creates an emitter writing to w (stdout in the binary).
func New(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes one record line. The payload must be JSON-marshalable;
// a marshal failure is returned without writing a partial line.
func (e *Emitter) Emit(kind string, payload any) error {
	data, err := json.Marshal(envelope{Type: kind, Data: payload})
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", kind, err)
	}
	data = append(data, '\n')

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := e.w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s record: %w", kind, err)
	}
	return nil
}

// Status emits a human-readable status record.
func (e *Emitter) Status(text string) error {
	return e.Emit("status", map[string]string{"status": text})
}

// Error emits an error record.
func (e *Emitter) Error(text string) error {
	return e.Emit("error", map[string]string{"message": text})
}

// Ready signals that the pipeline is initialized and records will follow.
func (e *Emitter) Ready() error {
	return e.Emit("ready", struct{}{})
}
