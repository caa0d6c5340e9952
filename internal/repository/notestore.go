package repository

import (
	"context"

	"github.com/tbolorunduro/firenotes/internal/model"
)

// NoteStore provides note persistence. Every read and mutation is scoped by
// the owner id: a note owned by someone else behaves exactly like a missing
// note.
type NoteStore interface {
	// Create inserts a new note.
	Create(ctx context.Context, n *model.Note) error
	// Get returns a single note by (id, owner), errs.ErrNotFound otherwise.
	Get(ctx context.Context, owner, id string) (*model.Note, error)
	// List returns the owner's notes, newest first, filtered by query.
	List(ctx context.Context, owner string, q model.NoteQuery) ([]model.Note, error)
	// Update applies a partial update to (id, owner) and returns
	// errs.ErrNotFound when no row matched.
	Update(ctx context.Context, owner, id string, upd model.NoteUpdate) error
	// SetFavorite sets the favorited flag on (id, owner); explicit set, not
	// a toggle. Returns errs.ErrNotFound when no row matched.
	SetFavorite(ctx context.Context, owner, id string, favorited bool) error
	// Delete removes (id, owner); removing an absent note is not an error.
	Delete(ctx context.Context, owner, id string) error
}
