package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/gorilla/feeds"
	messageDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/message/domain"
	"github.com/reshetovitsme/tg-wp-bridge/internal/shared/config"
	sharedErrors "github.com/reshetovitsme/tg-wp-bridge/internal/shared/errors"
	sloghttp "github.com/samber/slog-http"
)

const maxUpdateSize = 1 << 20

// UpdateHandler processes one decoded Telegram update
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *messageDomain.Update) error
}

// WebhookManager configures and inspects the Telegram webhook
type WebhookManager interface {
	SetWebhook(ctx context.Context) (string, error)
	WebhookInfo(ctx context.Context) (*models.WebhookInfo, error)
}

// FeedGenerator renders the feed of mirrored posts
type FeedGenerator interface {
	GenerateFeed(baseURL string) (*feeds.Feed, error)
}

// Server receives Telegram webhooks and serves the operational endpoints
type Server struct {
	cfg      *config.Config
	updates  UpdateHandler
	webhooks WebhookManager
	feed     FeedGenerator
	logger   *slog.Logger
	server   *http.Server
}

// New creates a new HTTP server. feed may be nil, which disables /rss.
func New(cfg *config.Config, updates UpdateHandler, webhooks WebhookManager, feed FeedGenerator) *Server {
	return &Server{
		cfg:      cfg,
		updates:  updates,
		webhooks: webhooks,
		feed:     feed,
		logger:   slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routes wrapped in the logging and recovery middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /webhook/{secret}", s.handleWebhook)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /telegram/set_webhook", s.handleSetWebhook)
	mux.HandleFunc("GET /telegram/webhook_info", s.handleWebhookInfo)
	if s.feed != nil {
		mux.HandleFunc("GET /rss", s.handleRSSFeed)
	}

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	// Webhook paths carry the shared secret and stay out of the access log.
	handler = sloghttp.NewWithFilters(s.logger, sloghttp.IgnorePathPrefix("/webhook/"))(handler)

	return handler
}

// Start starts the HTTP server and blocks until it stops. A stop caused by
// Shutdown returns nil.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("HTTP server starting", "addr", addr)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if err := s.checkSecret(r.PathValue("secret")); err != nil {
		s.logger.Warn("Rejecting webhook call", "remote_addr", r.RemoteAddr, "error", err)
		writeJSON(w, http.StatusForbidden, map[string]any{"detail": "Forbidden"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUpdateSize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "unreadable body"})
		return
	}

	update, err := messageDomain.ParseUpdate(body)
	if err != nil {
		s.logger.Warn("Rejecting undecodable update", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "invalid update payload"})
		return
	}

	// Telegram retries non-2xx responses, so processing errors still get 200.
	if err := s.updates.HandleUpdate(context.WithoutCancel(r.Context()), update); err != nil {
		s.logger.Error("Error while handling Telegram update", "update_id", update.UpdateID, "error", err)
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// checkSecret accepts any path secret when none is configured.
func (s *Server) checkSecret(secret string) error {
	expected := s.cfg.TelegramWebhookSecret
	if expected == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(expected)) != 1 {
		return sharedErrors.ErrInvalidWebhookSecret
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) handleSetWebhook(w http.ResponseWriter, r *http.Request) {
	if _, err := s.webhooks.SetWebhook(r.Context()); err != nil {
		s.logger.Error("Failed to set webhook", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"detail": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "result": true, "description": "Webhook was set"})
}

func (s *Server) handleWebhookInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.webhooks.WebhookInfo(r.Context())
	if err != nil {
		s.logger.Error("Failed to get webhook info", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"detail": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleRSSFeed(w http.ResponseWriter, r *http.Request) {
	baseURL := s.cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("%s://%s", getScheme(r), r.Host)
	}

	feed, err := s.feed.GenerateFeed(baseURL)
	if err != nil {
		s.logger.Error("Error generating feed", "error", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
