package sensing

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/focuswizard/go-focus-bridge/internal/log"
)

// ReplaySource reads update envelopes from an NDJSON capture file, one
// envelope per line. It exists for development and end-to-end testing:
// a session recorded from the relay can be replayed through the full
// pipeline without the SDK running.
type ReplaySource struct {
	path     string
	interval time.Duration // delay between updates; zero replays as fast as possible
}

// NewReplaySource creates a source reading from path, pacing updates by
// interval.
func NewReplaySource(path string, interval time.Duration) *ReplaySource {
	return &ReplaySource{path: path, interval: interval}
}

// Run dispatches every envelope in the capture file in order, then
// returns. Blank lines are skipped; malformed lines are logged and
// dropped rather than aborting the replay.
func (r *ReplaySource) Run(ctx context.Context, h Handler) error {
	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024) // dense mesh lines are large

	lineNo := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		env, err := ParseEnvelope([]byte(line))
		if err != nil {
			log.Warn("skipping malformed capture line", "line", lineNo, "error", err)
			continue
		}
		if err := Dispatch(env, h); err != nil {
			log.Warn("skipping undispatchable capture line", "line", lineNo, "error", err)
			continue
		}

		if r.interval > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(r.interval):
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read capture file: %w", err)
	}

	log.Info("replay finished", "path", r.path, "lines", lineNo)
	return nil
}
