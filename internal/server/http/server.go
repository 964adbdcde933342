// Package http exposes the authentication service over a JSON HTTP API.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aspira-project/aspira-backend/internal/logging"
	"github.com/aspira-project/aspira-backend/internal/server/models"
	"github.com/aspira-project/aspira-backend/internal/timex"
	"github.com/go-playground/validator/v10"
)

// Authenticator is the slice of the auth service the HTTP layer needs.
type Authenticator interface {
	Authenticate(ctx context.Context, uniqueID string, dateOfBirth timex.Date) (*models.Token, error)
	ResolveToken(ctx context.Context, value string) (*models.User, error)
}

// Server serves the public HTTP endpoints:
//
//	POST /api/auth/login/   credential check + token issuance
//	GET  /api/auth/whoami/  resolves the presented bearer token
//	GET  /api/health/       liveness probe
type Server struct {
	address         string
	auth            Authenticator
	logger          logging.Logger
	validate        *validator.Validate
	shutdownTimeout time.Duration
}

// NewServer constructs a Server bound to the given address.
func NewServer(address string, l logging.Logger, auth Authenticator, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         address,
		logger:          l.With("module", "http_server"),
		auth:            auth,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		shutdownTimeout: shutdownTimeout,
	}
}

// Routes returns the handler tree with middleware applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login/", s.handleLogin)
	mux.Handle("/api/auth/whoami/", s.requireToken(http.HandlerFunc(s.handleWhoami)))
	mux.HandleFunc("/api/health/", s.handleHealth)
	return s.logRequests(mux)
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
