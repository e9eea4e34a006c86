// Package api serves the wallet HTTP API and the static front-end.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vietddude/wallet-explorer/internal/core/domain"
)

// WalletService answers the two read queries.
type WalletService interface {
	Wallets(ctx context.Context, address string) ([]domain.Wallet, error)
	Transactions(ctx context.Context, address string) ([]domain.Transaction, error)
}

// Config holds HTTP server settings.
type Config struct {
	Port            int
	StaticDir       string
	StrictAddresses bool
}

// Server exposes the API, the static front-end and the operational
// endpoints on one port.
type Server struct {
	cfg     Config
	svc     WalletService
	health  http.Handler
	handler http.Handler
	server  *http.Server
	log     *slog.Logger
}

// NewServer creates a new API server. health may be nil.
func NewServer(cfg Config, svc WalletService, health http.Handler) *Server {
	s := &Server{
		cfg:    cfg,
		svc:    svc,
		health: health,
		log:    slog.Default().With("component", "api"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/wallet/{address}", s.handleWallet)
	mux.HandleFunc("GET /api/wallet/{address}/transactions", s.handleTransactions)
	if health != nil {
		mux.Handle("GET /health", health)
	}
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /", s.handleStatic)

	s.handler = withCORS(withRequestID(s.withAccessLog(mux)))
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the HTTP server. It returns nil after Stop.
func (s *Server) Start() error {
	s.log.Info("Server running", "port", s.cfg.Port)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
