package service

import (
	"context"
	"errors"

	"github.com/tbolorunduro/firenotes/internal/errs"
	"github.com/tbolorunduro/firenotes/internal/model"
	"github.com/tbolorunduro/firenotes/internal/repository"
)

// UserService defines self-only profile operations: the caller may act only
// on its own account, and a mismatch answers 400 rather than 403.
type UserService interface {
	// UpdateProfile overwrites non-blank name fields on the caller's account.
	UpdateProfile(ctx context.Context, callerID, targetID string, upd model.ProfileUpdate) error
	// Archive flags the caller's account as archived.
	Archive(ctx context.Context, callerID, targetID string) error
}

type UserServiceImpl struct {
	users repository.UserStore
}

// NewUserService constructs UserService.
func NewUserService(users repository.UserStore) *UserServiceImpl {
	return &UserServiceImpl{users: users}
}

// UpdateProfile applies a partial profile update to the caller's own account.
// Updating also clears the archived flag.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, callerID, targetID string, upd model.ProfileUpdate) error {
	if callerID != targetID {
		return errs.BadRequest("You can only update your own profile.")
	}
	err := s.users.UpdateProfile(ctx, targetID, upd)
	if errors.Is(err, errs.ErrNotFound) {
		return errs.NotFound("A user with that id doesn't exist.")
	}
	return err
}

// Archive marks the caller's own account as archived.
func (s *UserServiceImpl) Archive(ctx context.Context, callerID, targetID string) error {
	if callerID != targetID {
		return errs.BadRequest("You can only archive your own account.")
	}
	err := s.users.Archive(ctx, targetID)
	if errors.Is(err, errs.ErrNotFound) {
		return errs.NotFound("A user with that id doesn't exist.")
	}
	return err
}
