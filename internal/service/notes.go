package service

import (
	"context"
	"errors"
	"time"

	"github.com/tbolorunduro/firenotes/internal/errs"
	"github.com/tbolorunduro/firenotes/internal/model"
	"github.com/tbolorunduro/firenotes/internal/repository"
	"github.com/tbolorunduro/firenotes/internal/shortid"
)

// notFoundMsg deliberately merges "not found" and "no access": a note owned
// by someone else must be indistinguishable from a missing one.
const notFoundMsg = "Sorry, you either have no access to the note requested or it doesn't exist."

// NoteInput carries the note-creation payload.
type NoteInput struct {
	Title     string
	Details   string
	Tags      []string
	Favorited bool
}

// NoteService defines owner-scoped note operations. The owner argument is
// always the authenticated caller's id; it never comes from the payload.
type NoteService interface {
	// List returns the caller's notes, newest first.
	List(ctx context.Context, owner string, q model.NoteQuery) ([]model.Note, error)
	// Get returns a single note the caller owns.
	Get(ctx context.Context, owner, id string) (*model.Note, error)
	// Create persists a new note owned by the caller.
	Create(ctx context.Context, owner string, in NoteInput) (*model.Note, error)
	// Update applies a partial update and returns the updated note.
	Update(ctx context.Context, owner, id string, upd model.NoteUpdate) (*model.Note, error)
	// Delete removes a note; deleting an absent note succeeds.
	Delete(ctx context.Context, owner, id string) error
	// SetFavorite explicitly sets the favorited flag and returns the note.
	SetFavorite(ctx context.Context, owner, id string, favorited bool) (*model.Note, error)
}

type NoteServiceImpl struct {
	notes repository.NoteStore
}

// NewNoteService constructs NoteService.
func NewNoteService(notes repository.NoteStore) *NoteServiceImpl {
	return &NoteServiceImpl{notes: notes}
}

// List returns the owner's notes filtered by query.
func (s *NoteServiceImpl) List(ctx context.Context, owner string, q model.NoteQuery) ([]model.Note, error) {
	return s.notes.List(ctx, owner, q)
}

// Get returns a single owned note.
func (s *NoteServiceImpl) Get(ctx context.Context, owner, id string) (*model.Note, error) {
	n, err := s.notes.Get(ctx, owner, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(notFoundMsg)
		}
		return nil, err
	}
	return n, nil
}

// Create validates and persists a new note.
func (s *NoteServiceImpl) Create(ctx context.Context, owner string, in NoteInput) (*model.Note, error) {
	if blank(in.Title) {
		return nil, errs.BadRequest("A title is required.")
	}
	id, err := shortid.New()
	if err != nil {
		return nil, err
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	n := &model.Note{
		ID:        id,
		Owner:     owner,
		Title:     in.Title,
		Details:   in.Details,
		Tags:      tags,
		Created:   time.Now(),
		Favorited: in.Favorited,
	}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Update applies the partial update and reads the note back.
func (s *NoteServiceImpl) Update(ctx context.Context, owner, id string, upd model.NoteUpdate) (*model.Note, error) {
	if err := s.notes.Update(ctx, owner, id, upd); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(notFoundMsg)
		}
		return nil, err
	}
	return s.Get(ctx, owner, id)
}

// Delete removes the note if the caller owns it; absent notes are fine.
func (s *NoteServiceImpl) Delete(ctx context.Context, owner, id string) error {
	return s.notes.Delete(ctx, owner, id)
}

// SetFavorite sets the flag (idempotent) and reads the note back.
func (s *NoteServiceImpl) SetFavorite(ctx context.Context, owner, id string, favorited bool) (*model.Note, error) {
	if err := s.notes.SetFavorite(ctx, owner, id, favorited); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(notFoundMsg)
		}
		return nil, err
	}
	return s.Get(ctx, owner, id)
}
