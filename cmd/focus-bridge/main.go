// focus-bridge - headless attention-state pipeline.
//
// Consumes physiological and facial readings from the sensing relay
// (or a recorded capture file), classifies them into an attention state
// plus focus score, and emits NDJSON records on stdout for the
// companion UI. Logs go to stderr; stdout carries only the protocol.
//
// Usage:
//
//	# Live, reading from the sensing relay
//	focus-bridge --sensor-url=ws://127.0.0.1:8971/ws/metrics
//
//	# Replay a recorded session
//	focus-bridge --replay=session.ndjson --replay-interval=33ms
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/focuswizard/go-focus-bridge/internal/config"
	"github.com/focuswizard/go-focus-bridge/internal/httpc"
	"github.com/focuswizard/go-focus-bridge/internal/log"
	"github.com/focuswizard/go-focus-bridge/pkg/emitter"
	"github.com/focuswizard/go-focus-bridge/pkg/focus"
	"github.com/focuswizard/go-focus-bridge/pkg/sensing"
	"github.com/focuswizard/go-focus-bridge/pkg/web"
)

func main() {
	defaults := focus.DefaultThresholds()

	var (
		sensorURL      = flag.String("sensor-url", config.SensorURL("ws://127.0.0.1:8971/ws/metrics"), "sensing relay WebSocket URL")
		replayPath     = flag.String("replay", "", "replay updates from an NDJSON capture file instead of the relay")
		replayInterval = flag.Duration("replay-interval", 0, "delay between replayed updates (0 = no pacing)")

		dashboard     = flag.Bool("dashboard", false, "serve the local web dashboard")
		dashboardPort = flag.String("dashboard-port", config.DashboardPort(), "dashboard listen port")

		blinkThreshold     = flag.Float64("blink-threshold", config.Float("BLINK_THRESHOLD", defaults.BlinkRateDrowsy), "blink rate (blinks/min) above which the subject is drowsy")
		pulseThreshold     = flag.Float64("pulse-threshold", config.Float("PULSE_THRESHOLD", defaults.PulseStressed), "pulse rate (BPM) above which stress is considered")
		breathingThreshold = flag.Float64("breathing-threshold", config.Float("BREATHING_THRESHOLD", defaults.BreathingStressed), "breathing rate (breaths/min) above which stress is considered")
		gazeThreshold      = flag.Float64("gaze-threshold", config.Float("GAZE_THRESHOLD", defaults.GazeDistraction), "gaze deviation magnitude above which the subject is distracted")
		absenceTimeout     = flag.Duration("absence-timeout", config.Duration("ABSENCE_TIMEOUT", defaults.FaceAbsenceTimeout), "continuous face absence before marking AWAY")

		logLevel = flag.String("log-level", config.LogLevel(), "log level: debug, info, warn, error")
	)
	flag.Parse()

	log.Init(*logLevel)

	out := emitter.New(os.Stdout)

	thresholds := focus.Thresholds{
		BlinkRateDrowsy:    *blinkThreshold,
		PulseStressed:      *pulseThreshold,
		BreathingStressed:  *breathingThreshold,
		GazeDistraction:    *gazeThreshold,
		FaceAbsenceTimeout: *absenceTimeout,
	}

	pipeline := focus.NewPipeline(thresholds, out)
	log.Info("pipeline created", "subject_id", pipeline.SubjectID())

	if *dashboard {
		server := web.NewServer(*dashboardPort, thresholds)
		pipeline.SetBroadcaster(server)
		server.StartAsync()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var source interface {
		Run(ctx context.Context, h sensing.Handler) error
	}
	if *replayPath != "" {
		out.Status(fmt.Sprintf("Replaying capture %s...", *replayPath))
		source = sensing.NewReplaySource(*replayPath, *replayInterval)
	} else {
		probeRelay(*sensorURL)
		out.Status("Connecting to sensing relay...")
		source = sensing.NewSocketSource(*sensorURL)
	}

	out.Ready()

	if err := source.Run(ctx, pipeline); err != nil {
		out.Error(err.Error())
		log.Error("source failed", "error", err)
		os.Exit(1)
	}

	out.Status("Shutting down...")
}

// probeRelay checks the relay's health endpoint before dialing the
// WebSocket, so a missing relay surfaces as a clear log line instead of
// silent reconnect attempts. Non-fatal: the socket source retries anyway.
func probeRelay(wsURL string) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return
	}
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	default:
		return
	}
	u.Path = "/healthz"

	resp, err := httpc.NewClient(3 * time.Second).Get(u.String())
	if err != nil {
		log.Warn("sensing relay health probe failed", "url", u.String(), "error", err)
		return
	}
	resp.Body.Close()
	log.Debug("sensing relay health probe ok", "status", resp.StatusCode)
}
