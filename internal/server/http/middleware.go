package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aspira-project/aspira-backend/internal/common"
	"github.com/aspira-project/aspira-backend/internal/server/models"
	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "auth_user"

func userFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// requireToken resolves the "Authorization: Token <value>" header to a user
// and stores it on the request context. Requests without a resolvable token
// get the same generic 401 regardless of the cause.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		value := tokenFromHeader(r)
		user, err := s.auth.ResolveToken(r.Context(), value)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid token"})
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromHeader(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != common.TokenHeaderScheme {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs one line per request with a generated request id.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"request_id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
