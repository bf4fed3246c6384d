package sensing

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/focuswizard/go-focus-bridge/internal/log"
)

// Reconnect backoff bounds for the socket source.
const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// SocketSource reads update envelopes from the sensing relay over a
// WebSocket connection. The relay is the process that wraps the SDK and
// forwards its callbacks as NDJSON-style envelopes, one per message.
type SocketSource struct {
	url    string
	dialer *websocket.Dialer
}

// NewSocketSource creates a source that connects to the given ws:// URL.
func NewSocketSource(url string) *SocketSource {
	return &SocketSource{
		url: url,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

// Run connects to the relay and dispatches updates to the handler until
// the context is cancelled. Connection failures are retried with
// exponential backoff; the backoff resets after a successful connect.
func (s *SocketSource) Run(ctx context.Context, h Handler) error {
	backoff := initialBackoff

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warn("sensing relay connect failed", "url", s.url, "error", err, "retry_in", backoff)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}

		log.Info("connected to sensing relay", "url", s.url)
		backoff = initialBackoff

		if err := s.readLoop(ctx, conn, h); err != nil && ctx.Err() == nil {
			log.Warn("sensing relay connection lost", "error", err)
		}
	}
}

// readLoop consumes envelopes from one connection until it fails or the
// context is cancelled.
func (s *SocketSource) readLoop(ctx context.Context, conn *websocket.Conn, h Handler) error {
	defer conn.Close()

	// Unblock ReadMessage on cancellation by closing the connection.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		env, err := ParseEnvelope(data)
		if err != nil {
			log.Warn("dropping malformed envelope", "error", err)
			continue
		}
		if err := Dispatch(env, h); err != nil {
			log.Warn("dropping undispatchable envelope", "type", env.Type, "error", err)
		}
	}
}
