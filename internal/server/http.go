package server

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/JacksenSE/AutomatedGameTiktok/internal/sim"
)

// Server bundles the HTTP surface with the websocket hub. The simulation
// goroutine hands finished snapshots to Publish; everything here is a
// read path.
type Server struct {
	log  *zap.SugaredLogger
	hub  *Hub
	last atomic.Pointer[sim.Snapshot]
}

// NewServer wires the hub into an HTTP-facing server.
func NewServer(hub *Hub, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{log: logger.Sugar(), hub: hub}
}

// Publish stores the snapshot for /state readers and broadcasts it to
// websocket viewers. Called once per outer frame by the sim goroutine.
func (s *Server) Publish(snap *sim.Snapshot) {
	s.last.Store(snap)
	msg, err := json.Marshal(snap)
	if err != nil {
		s.log.Errorw("snapshot marshal failed", "error", err)
		return
	}
	s.hub.Broadcast(msg)
}

// Router builds the full route tree.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/state", s.handleState)
	r.Get("/leaderboard", s.handleLeaderboard)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", s.hub.Handler())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	snap := s.last.Load()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no snapshot yet"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, _ *http.Request) {
	snap := s.last.Load()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no snapshot yet"})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]sim.ScoreEntry{
		"kills":      snap.Stats.TopKills,
		"supporters": snap.Stats.TopSupporters,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
