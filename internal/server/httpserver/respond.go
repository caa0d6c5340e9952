package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/tbolorunduro/firenotes/internal/errs"
)

// respondJSON writes a JSON body with status 200.
func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

// respondText writes a plain-text body with the given status.
func respondText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if msg != "" {
		_, _ = w.Write([]byte(msg))
	}
}

// respondError maps a service error onto the response: typed API errors carry
// their own status and exact message, anything else is an opaque 500.
func respondError(w http.ResponseWriter, log *zap.Logger, err error) {
	var e *errs.Error
	if errors.As(err, &e) {
		respondText(w, e.Status, e.Message)
		return
	}
	log.Error("internal error", zap.Error(err))
	respondText(w, http.StatusInternalServerError, "Sorry, something went wrong.")
}
