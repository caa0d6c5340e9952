package httpserver

import (
	"net/http"

	"github.com/tbolorunduro/firenotes/internal/model"
)

type profilePayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerID(w, r)
	if !ok {
		return
	}
	var p profilePayload
	if !decodePayload(w, r, &p) {
		return
	}
	err := s.users.UpdateProfile(r.Context(), caller, r.PathValue("id"), model.ProfileUpdate{
		FirstName: p.FirstName,
		LastName:  p.LastName,
	})
	if err != nil {
		respondError(w, s.log, err)
		return
	}
	respondText(w, http.StatusOK, "Profile successfully updated.")
}

func (s *Server) archiveUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.callerID(w, r)
	if !ok {
		return
	}
	if err := s.users.Archive(r.Context(), caller, r.PathValue("id")); err != nil {
		respondError(w, s.log, err)
		return
	}
	respondText(w, http.StatusOK, "Account successfully archived.")
}
