// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/tbolorunduro/firenotes/internal/model"
)

// UserStore provides account persistence.
type UserStore interface {
	// Create inserts a new user. Returns errs.ErrAlreadyExists when the
	// email is taken.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by id.
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByEmail loads a user by exact email match.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdatePassword replaces the stored password hash for the given email.
	UpdatePassword(ctx context.Context, email, hashedPassword string) error
	// UpdateProfile overwrites non-blank name fields and clears the
	// archived flag.
	UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) error
	// Archive sets the archived flag.
	Archive(ctx context.Context, id string) error
}
