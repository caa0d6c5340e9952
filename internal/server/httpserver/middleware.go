package httpserver

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tbolorunduro/firenotes/internal/token"
)

// statusRecorder captures the response code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Logging returns middleware that logs request metadata, never payloads.
func Logging(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("dur", time.Since(start)),
				zap.String("remote", r.RemoteAddr),
			)
		})
	}
}

// Recover returns middleware that recovers from handler panics.
func Recover(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic",
						zap.Any("reason", rec),
						zap.ByteString("stack", debug.Stack()),
						zap.String("path", r.URL.Path),
					)
					respondText(w, http.StatusInternalServerError, "Sorry, something went wrong.")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// requireAuth gates protected routes: it extracts the bearer token, verifies
// it and attaches the caller's id to the request context. Downstream handlers
// never re-verify.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok, ok := bearerToken(r)
		if !ok {
			respondText(w, http.StatusUnauthorized, "Sorry, a token is required to access this route.")
			return
		}
		claims, err := s.codec.VerifyAuth(tok)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				respondText(w, http.StatusUnauthorized, "Sorry, your token is expired. Please login.")
			case errors.Is(err, token.ErrBadSignature):
				respondText(w, http.StatusUnauthorized, "Sorry, this token has an invalid signature.")
			default:
				respondText(w, http.StatusUnauthorized, "Sorry, this token is corrupted.")
			}
			return
		}
		next(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	v := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
		if t := strings.TrimSpace(v[7:]); t != "" {
			return t, true
		}
	}
	return "", false
}
