package http

import (
	"net/http"
	"strings"
	"time"

	"rentmarket-backend/internal/logger"
	"rentmarket-backend/internal/security"

	"github.com/google/uuid"
)

// RequestLogger tags each request with a generated id and logs method, path,
// status and duration once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		sw.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(sw, r)

		logger.WithRequest(requestID).Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Authenticator resolves the acting user from a bearer token. The core never
// reads an ambient "current user"; handlers pass the resolved actor id down
// explicitly.
type Authenticator struct {
	tokens security.TokenManager
}

func NewAuthenticator(tokens security.TokenManager) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// Resolve attaches the actor id when a valid token is present, without
// requiring one. Public catalog pages still learn who is browsing so the
// can_request flag comes back right.
func (a *Authenticator) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if claims, err := a.tokens.ValidateToken(token); err == nil && claims.Type == security.TokenTypeAccess {
				r = r.WithContext(WithActorID(r.Context(), claims.UserID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Require rejects requests that do not carry a valid access token.
func (a *Authenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "missing bearer token"})
			return
		}
		claims, err := a.tokens.ValidateToken(token)
		if err != nil || claims.Type != security.TokenTypeAccess {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActorID(r.Context(), claims.UserID)))
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
