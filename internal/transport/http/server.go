package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/IT-Union-DAO/tg-admin/internal/shared/config"
	"github.com/IT-Union-DAO/tg-admin/internal/shared/metrics"
	"github.com/IT-Union-DAO/tg-admin/internal/shared/version"
	"github.com/IT-Union-DAO/tg-admin/internal/transport/telegram"
	"github.com/go-telegram/bot/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	sloghttp "github.com/samber/slog-http"
)

// Dispatcher processes a decoded update and reports success
type Dispatcher interface {
	Process(ctx context.Context, update *models.Update) bool
}

// BotProber checks Bot API connectivity for the health endpoint
type BotProber interface {
	GetBotInfo(ctx context.Context) (*telegram.BotInfo, error)
}

// Server handles the webhook callback and the service endpoints
type Server struct {
	cfg        *config.Config
	dispatcher Dispatcher
	prober     BotProber
	logger     *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, dispatcher Dispatcher, prober BotProber) *Server {
	return &Server{
		cfg:        cfg,
		dispatcher: dispatcher,
		prober:     prober,
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler builds the routing table with logging and panic recovery
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Webhook endpoint for Telegram updates
	mux.HandleFunc("POST /webhook", s.handleWebhook)

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Version information endpoint
	mux.HandleFunc("GET /version", s.handleVersion)

	// Basic info endpoint
	mux.HandleFunc("GET /", s.handleRoot)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	return handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Webhook server starting", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update models.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.logger.Error("Failed to decode update", "error", err)
		metrics.WebhookUpdate("invalid")
		http.Error(w, "Invalid update payload", http.StatusBadRequest)
		return
	}

	s.logger.Info("Received update", "update_id", update.ID)

	if !s.dispatcher.Process(r.Context(), &update) {
		http.Error(w, "Failed to process update", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info, err := s.prober.GetBotInfo(r.Context())
	if err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "unhealthy",
			"error":     "Bot API connection failed",
			"timestamp": time.Now().UnixMilli(),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"bot": map[string]any{
			"id":         info.ID,
			"username":   info.Username,
			"first_name": info.FirstName,
		},
		"timestamp": time.Now().UnixMilli(),
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"service": "Telegram Moderation Bot",
		"version": version.Version,
		"status":  "running",
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, version.Info())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Failed to encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":"error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
