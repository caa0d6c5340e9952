package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/tbolorunduro/firenotes/internal/service"
)

// decodePayload decodes a JSON body. An empty or unparseable body answers
// 400 "The payload must not be null." and reports false.
func decodePayload(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondText(w, http.StatusBadRequest, "The payload must not be null.")
		return false
	}
	return true
}

type signUpPayload struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (s *Server) signUp(w http.ResponseWriter, r *http.Request) {
	var p signUpPayload
	if !decodePayload(w, r, &p) {
		return
	}
	view, err := s.auth.SignUp(r.Context(), service.SignUpInput{
		Email:     p.Email,
		Password:  p.Password,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	})
	if err != nil {
		respondError(w, s.log, err)
		return
	}
	respondJSON(w, view)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var p loginPayload
	if !decodePayload(w, r, &p) {
		return
	}
	view, err := s.auth.Login(r.Context(), p.Email, p.Password)
	if err != nil {
		respondError(w, s.log, err)
		return
	}
	respondJSON(w, view)
}

type forgotPasswordPayload struct {
	Email string `json:"email"`
}

func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var p forgotPasswordPayload
	if !decodePayload(w, r, &p) {
		return
	}
	if err := s.auth.ForgotPassword(r.Context(), p.Email); err != nil {
		respondError(w, s.log, err)
		return
	}
	respondText(w, http.StatusOK, "Your password reset email has been sent.")
}

type resetPasswordPayload struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (s *Server) resetPassword(w http.ResponseWriter, r *http.Request) {
	var p resetPasswordPayload
	if !decodePayload(w, r, &p) {
		return
	}
	if err := s.auth.ResetPassword(r.Context(), p.Token, p.Password, p.ConfirmPassword); err != nil {
		respondError(w, s.log, err)
		return
	}
	respondText(w, http.StatusOK, "The password has been updated.")
}
