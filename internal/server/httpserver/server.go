// Package httpserver exposes the firenotes HTTP API.
package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/tbolorunduro/firenotes/internal/service"
	"github.com/tbolorunduro/firenotes/internal/token"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth  service.AuthService
	notes service.NoteService
	users service.UserService
	codec *token.Codec
	log   *zap.Logger
}

// New constructs a Server with injected services.
func New(auth service.AuthService, notes service.NoteService, users service.UserService, codec *token.Codec, log *zap.Logger) *Server {
	return &Server{auth: auth, notes: notes, users: users, codec: codec, log: log}
}

// Handler returns the full route table wrapped in recovery and logging
// middleware. Routes under /api/auth plus the two welcome pages bypass the
// auth gate; everything else requires a bearer token.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Public routes.
	mux.HandleFunc("GET /{$}", s.root)
	mux.HandleFunc("GET /api/{$}", s.apiRoot)
	mux.HandleFunc("POST /api/auth/signup", s.signUp)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("POST /api/auth/forgot-password", s.forgotPassword)
	mux.HandleFunc("POST /api/auth/reset-password", s.resetPassword)

	// Protected routes.
	mux.HandleFunc("GET /api/notes", s.requireAuth(s.listNotes))
	mux.HandleFunc("POST /api/notes", s.requireAuth(s.createNote))
	mux.HandleFunc("GET /api/notes/{id}", s.requireAuth(s.getNote))
	mux.HandleFunc("PUT /api/notes/{id}", s.requireAuth(s.updateNote))
	mux.HandleFunc("DELETE /api/notes/{id}", s.requireAuth(s.deleteNote))
	mux.HandleFunc("POST /api/notes/{id}/favorite", s.requireAuth(s.favoriteNote))
	mux.HandleFunc("POST /api/notes/{id}/unfavorite", s.requireAuth(s.unfavoriteNote))
	mux.HandleFunc("PUT /api/users/{id}", s.requireAuth(s.updateProfile))
	mux.HandleFunc("POST /api/users/{id}/archive", s.requireAuth(s.archiveUser))

	var h http.Handler = mux
	h = Logging(s.log)(h)
	h = Recover(s.log)(h)
	return h
}

func (s *Server) root(w http.ResponseWriter, _ *http.Request) {
	respondText(w, http.StatusOK, "Welcome to the Firenotes API. Start by making requests to the /api routes.")
}

func (s *Server) apiRoot(w http.ResponseWriter, _ *http.Request) {
	respondText(w, http.StatusOK, "Welcome to the Firenotes API.")
}
