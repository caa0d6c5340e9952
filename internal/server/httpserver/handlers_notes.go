package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tbolorunduro/firenotes/internal/model"
	"github.com/tbolorunduro/firenotes/internal/service"
)

type notePayload struct {
	Title       string   `json:"title"`
	Details     string   `json:"details"`
	Tags        []string `json:"tags"`
	IsFavorited bool     `json:"isFavorited"`
}

// callerID reads the identity the auth gate attached to the context.
func (s *Server) callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := UserIDFromCtx(r.Context())
	if !ok {
		// The gate always runs first on protected routes; this is a wiring bug.
		respondText(w, http.StatusUnauthorized, "Sorry, a token is required to access this route.")
	}
	return id, ok
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerID(w, r)
	if !ok {
		return
	}
	q := model.NoteQuery{}
	params := r.URL.Query()
	if v := params.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Limit = n
		}
	}
	if v := params.Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Skip = n
		}
	}
	q.Tag = params.Get("tag")
	if v := params.Get("date"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			q.Date = d
		}
	}

	notes, err := s.notes.List(r.Context(), caller, q)
	if err != nil {
		respondError(w, s.log, err)
		return
	}
	respondJSON(w, toNoteViews(notes))
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerID(w, r)
	if !ok {
		return
	}
	n, err := s.notes.Get(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		respondError(w, s.log, err)
		return
	}
	respondJSON(w, toNoteView(*n))
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerID(w, r)
	if !ok {
		return
	}
	var p notePayload
	if !decodePayload(w, r, &p) {
		return
	}
	n, err := s.notes.Create(r.Context(), caller, service.NoteInput{
		Title:     p.Title,
		Details:   p.Details,
		Tags:      p.Tags,
		Favorited: p.IsFavorited,
	})
	if err != nil {
		respondError(w, s.log, err)
		return
	}
	respondJSON(w, toNoteView(*n))
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerID(w, r)
	if !ok {
		return
	}
	var p notePayload
	if !decodePayload(w, r, &p) {
		return
	}
	n, err := s.notes.Update(r.Context(), caller, r.PathValue("id"), model.NoteUpdate{
		Title:   p.Title,
		Details: p.Details,
		Tags:    p.Tags,
	})
	if err != nil {
		respondError(w, s.log, err)
		return
	}
	respondJSON(w, toNoteView(*n))
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerID(w, r)
	if !ok {
		return
	}
	if err := s.notes.Delete(r.Context(), caller, r.PathValue("id")); err != nil {
		respondError(w, s.log, err)
		return
	}
	respondText(w, http.StatusOK, "Note successfully removed.")
}

func (s *Server) favoriteNote(w http.ResponseWriter, r *http.Request) {
	s.setFavorite(w, r, true)
}

func (s *Server) unfavoriteNote(w http.ResponseWriter, r *http.Request) {
	s.setFavorite(w, r, false)
}

func (s *Server) setFavorite(w http.ResponseWriter, r *http.Request, favorited bool) {
	caller, ok := s.callerID(w, r)
	if !ok {
		return
	}
	n, err := s.notes.SetFavorite(r.Context(), caller, r.PathValue("id"), favorited)
	if err != nil {
		respondError(w, s.log, err)
		return
	}
	respondJSON(w, toNoteView(*n))
}
