// Package sensing defines the boundary with the external physiology SDK.
// The SDK process emits two kinds of update payloads: periodic "refined"
// bundles computed by the remote analysis API, and per-frame bundles
// computed on-device. This package holds the payload shapes, the JSON
// envelope they travel in, and the sources that deliver them.
package sensing

import (
	"encoding/json"
	"fmt"
)

// Measurement is a timestamped scalar sample with a confidence estimate,
// e.g. one pulse-rate or breathing-rate reading.
type Measurement struct {
	TimeS      float64 `json:"time"`
	Value      float64 `json:"value"`
	Stable     bool    `json:"stable,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Detection is a timestamped boolean observation, e.g. blinking or talking.
type Detection struct {
	TimeS    float64 `json:"time"`
	Detected bool    `json:"detected"`
	Stable   bool    `json:"stable,omitempty"`
}

// Point is a facial landmark coordinate. Z is carried for 3-D meshes but
// only X and Y are consumed downstream.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// LandmarkFrame is one ordered landmark set for a single frame.
// A set of 468 or more points is a full dense face mesh.
type LandmarkFrame struct {
	TimeS  float64 `json:"time"`
	Points []Point `json:"points"`
}

// FaceMetrics carries the face-level observations of an update. Each slice
// may hold zero or more samples; the most recent sample wins.
type FaceMetrics struct {
	Blinking  []Detection     `json:"blinking,omitempty"`
	Talking   []Detection     `json:"talking,omitempty"`
	Landmarks []LandmarkFrame `json:"landmarks,omitempty"`
}

// RefinedUpdate is the periodic higher-latency bundle from the analysis
// API: pulse and breathing samples plus optional face-level detections,
// tagged with the capture timestamp in microseconds.
type RefinedUpdate struct {
	TimestampUS int64         `json:"timestamp_us"`
	Pulse       []Measurement `json:"pulse,omitempty"`
	Breathing   []Measurement `json:"breathing,omitempty"`
	Face        *FaceMetrics  `json:"face,omitempty"`
}

// FrameUpdate is the per-frame on-device bundle. A nil Face means no face
// was present in the frame.
type FrameUpdate struct {
	Face *FaceMetrics `json:"face,omitempty"`
}

// Handler receives decoded updates from a Source. Both methods are invoked
// synchronously from the source's read loop.
type Handler interface {
	HandleRefined(u RefinedUpdate)
	HandleFrame(u FrameUpdate)
}

// MessageType identifies an envelope payload.
type MessageType string

const (
	TypeRefined MessageType = "refined"
	TypeFrame   MessageType = "frame"
)

// Envelope is the wire wrapper around a single update.
type Envelope struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ParseEnvelope decodes one envelope from raw bytes.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse envelope: %w", err)
	}
	return &env, nil
}

// Decode unmarshals the envelope payload into v.
func (e *Envelope) Decode(v any) error {
	if e.Data == nil {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// Dispatch decodes the envelope payload and routes it to the handler.
// Unknown envelope types are reported as errors so callers can decide
// whether to log or drop them.
func Dispatch(env *Envelope, h Handler) error {
	switch env.Type {
	case TypeRefined:
		var u RefinedUpdate
		if err := env.Decode(&u); err != nil {
			return fmt.Errorf("failed to decode refined update: %w", err)
		}
		h.HandleRefined(u)
	case TypeFrame:
		var u FrameUpdate
		if err := env.Decode(&u); err != nil {
			return fmt.Errorf("failed to decode frame update: %w", err)
		}
		h.HandleFrame(u)
	default:
		return fmt.Errorf("unknown envelope type %q", env.Type)
	}
	return nil
}
