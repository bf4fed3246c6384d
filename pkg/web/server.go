// Package web provides a local dashboard for the focus bridge: a live
// view of the classifier output for development and observability. The
// companion UI itself reads stdout; the dashboard is optional.
package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/focuswizard/go-focus-bridge/internal/log"
	"github.com/focuswizard/go-focus-bridge/pkg/focus"
	"github.com/focuswizard/go-focus-bridge/pkg/hub"
)

// Server is the dashboard HTTP/WebSocket server.
type Server struct {
	app  *fiber.App
	port string

	thresholds focus.Thresholds

	// Latest classification, for clients that poll instead of streaming
	mu     sync.RWMutex
	latest *focus.FocusRecord

	// Hub for websocket broadcast of focus records
	focusHub *hub.Hub
}

// NewServer creates a dashboard server on the given port.
func NewServer(port string, thresholds focus.Thresholds) *Server {
	s := &Server{
		port:       port,
		thresholds: thresholds,
		focusHub:   hub.New("focus"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Focus Bridge Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/state", s.handleState)
	api.Get("/thresholds", s.handleThresholds)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/focus", websocket.New(s.handleFocusWS))

	s.app = app
	return s
}

// Start starts the dashboard server and blocks.
func (s *Server) Start() error {
	go s.focusHub.Run()
	log.Info("dashboard listening", "addr", "http://localhost:"+s.port)
	return s.app.Listen(":" + s.port)
}

// StartAsync starts the dashboard server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("dashboard server stopped", "error", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// BroadcastFocus records the latest classification and fans it out to
// all streaming clients. Implements focus.Broadcaster.
func (s *Server) BroadcastFocus(rec focus.FocusRecord) {
	s.mu.Lock()
	s.latest = &rec
	s.mu.Unlock()

	s.focusHub.BroadcastJSON(rec)
}

// handleState returns the most recent classification.
func (s *Server) handleState(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return c.Status(fiber.StatusNoContent).SendString("")
	}
	return c.JSON(s.latest)
}

// handleThresholds returns the active threshold set.
func (s *Server) handleThresholds(c *fiber.Ctx) error {
	return c.JSON(s.thresholds)
}

// handleFocusWS attaches a streaming client to the focus hub.
func (s *Server) handleFocusWS(conn *websocket.Conn) {
	client := hub.NewClient(s.focusHub, conn)
	client.Run()
}
