// Package service contains application services for authentication, notes and
// profiles.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	pkgcrypto "github.com/tbolorunduro/firenotes/internal/crypto"
	"github.com/tbolorunduro/firenotes/internal/email"
	"github.com/tbolorunduro/firenotes/internal/errs"
	"github.com/tbolorunduro/firenotes/internal/model"
	"github.com/tbolorunduro/firenotes/internal/repository"
	"github.com/tbolorunduro/firenotes/internal/shortid"
	"github.com/tbolorunduro/firenotes/internal/token"
)

// AuthView is the response shape for signup and login.
type AuthView struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SignUpInput carries the signup payload.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService defines the stateless authentication flows.
type AuthService interface {
	// SignUp creates an account and returns a fresh auth token.
	SignUp(ctx context.Context, in SignUpInput) (AuthView, error)
	// Login verifies credentials and returns a fresh auth token.
	Login(ctx context.Context, emailAddr, password string) (AuthView, error)
	// ForgotPassword emails a reset link carrying a reset token.
	ForgotPassword(ctx context.Context, emailAddr string) error
	// ResetPassword verifies a reset token and stores a new password hash.
	ResetPassword(ctx context.Context, tok, password, confirm string) error
}

type AuthServiceImpl struct {
	users       repository.UserStore
	codec       *token.Codec
	sender      email.Sender
	frontEndURL string
	log         *zap.Logger
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserStore, codec *token.Codec, sender email.Sender, frontEndURL string, log *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, codec: codec, sender: sender, frontEndURL: frontEndURL, log: log}
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// SignUp validates the payload, persists the user and issues an auth token.
// The welcome email is best-effort: a failed send is logged, never surfaced.
func (s *AuthServiceImpl) SignUp(ctx context.Context, in SignUpInput) (AuthView, error) {
	if blank(in.Email) {
		return AuthView{}, errs.BadRequest("An email address is required.")
	}
	if blank(in.Password) {
		return AuthView{}, errs.BadRequest("A password is required.")
	}
	if len(in.Password) < 8 {
		return AuthView{}, errs.BadRequest("The password cannot be less than 8 characters.")
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return AuthView{}, errs.Conflict("Sorry, a user with that email already exists.")
	} else if !errors.Is(err, errs.ErrNotFound) {
		return AuthView{}, err
	}

	id, err := shortid.New()
	if err != nil {
		return AuthView{}, err
	}
	hashed, err := pkgcrypto.HashPassword(in.Password)
	if err != nil {
		return AuthView{}, err
	}
	u := &model.User{
		ID:             id,
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		HashedPassword: hashed,
		CreatedAt:      time.Now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return AuthView{}, errs.Conflict("Sorry, a user with that email already exists.")
		}
		// No token is issued when the insert failed.
		return AuthView{}, err
	}

	if err := s.sender.Send(ctx, u.Email, email.WelcomeSubject, email.WelcomeBody(u.Email, u.FirstName)); err != nil {
		s.log.Error("send welcome email", zap.String("email", u.Email), zap.Error(err))
	}

	tok, err := s.codec.IssueAuth(u.ID, u.Email)
	if err != nil {
		return AuthView{}, err
	}
	return authView(u, tok), nil
}

// Login authenticates by email and password.
func (s *AuthServiceImpl) Login(ctx context.Context, emailAddr, password string) (AuthView, error) {
	if blank(emailAddr) {
		return AuthView{}, errs.BadRequest("An email address is required.")
	}
	if blank(password) {
		return AuthView{}, errs.BadRequest("A password is required.")
	}

	u, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return AuthView{}, errs.NotFound("A user with that email address doesn't exist.")
		}
		return AuthView{}, err
	}
	if u.Archived {
		return AuthView{}, errs.BadRequest("This user's account has been archived. Please contact support.")
	}
	if !pkgcrypto.VerifyPassword(password, u.HashedPassword) {
		// 401 with an empty body: no detail leaks about which part failed.
		return AuthView{}, errs.Unauthorized("")
	}

	tok, err := s.codec.IssueAuth(u.ID, u.Email)
	if err != nil {
		return AuthView{}, err
	}
	return authView(u, tok), nil
}

// ForgotPassword issues a reset token and emails a reset link. Unlike the
// other sends, a delivery failure here is surfaced to the caller.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, emailAddr string) error {
	if blank(emailAddr) {
		return errs.BadRequest("An email address is required.")
	}

	u, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.NotFound("A user with that email address doesn't exist.")
		}
		return err
	}

	tok, err := s.codec.IssueReset(u.Email)
	if err != nil {
		return err
	}
	body := email.ForgotPasswordBody(s.frontEndURL, u.Email, tok)
	if err := s.sender.Send(ctx, u.Email, email.ForgotPasswordSubject, body); err != nil {
		s.log.Error("send reset email", zap.String("email", u.Email), zap.Error(err))
		return errs.Internal("Sorry, an error occurred while sending the reset email.")
	}
	return nil
}

// ResetPassword decodes the token without caring about its kind, reads the
// email claim and re-derives the stored hash. The confirmation email is
// best-effort.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, tok, password, confirm string) error {
	if blank(tok) {
		return errs.BadRequest("A token is required.")
	}
	if blank(password) {
		return errs.BadRequest("A password is required.")
	}
	if blank(confirm) {
		return errs.BadRequest("A password confirmation is required.")
	}
	if password != confirm {
		return errs.BadRequest("The passwords must match.")
	}

	claims, err := s.codec.VerifyReset(tok)
	if err != nil {
		s.log.Error("reset password: verify token", zap.Error(err))
		return errs.Internal("Sorry, an error occurred while updating the password.")
	}
	if blank(claims.Email) {
		return errs.BadRequest("The email is invalid.")
	}

	u, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.NotFound("A user with that email address doesn't exist.")
		}
		s.log.Error("reset password: lookup user", zap.Error(err))
		return errs.Internal("Sorry, an error occurred while updating the password.")
	}

	hashed, err := pkgcrypto.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, u.Email, hashed); err != nil {
		s.log.Error("reset password: update hash", zap.Error(err))
		return errs.Internal("Sorry, an error occurred while updating the password.")
	}

	if err := s.sender.Send(ctx, u.Email, email.PasswordConfirmedSubject, email.PasswordConfirmedBody(u.Email)); err != nil {
		s.log.Error("send reset confirmation email", zap.String("email", u.Email), zap.Error(err))
	}
	return nil
}

func authView(u *model.User, tok string) AuthView {
	return AuthView{
		ID:        u.ID,
		Token:     tok,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
