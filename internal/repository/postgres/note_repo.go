package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tbolorunduro/firenotes/internal/errs"
	"github.com/tbolorunduro/firenotes/internal/model"
)

// NoteRepo implements repository.NoteStore using PostgreSQL. Ownership is
// enforced in every statement: the owner id is part of each WHERE clause, so
// another user's note is indistinguishable from a missing one.
type NoteRepo struct{ db *DB }

// NewNoteRepo constructs a note repository.
func NewNoteRepo(db *DB) *NoteRepo { return &NoteRepo{db: db} }

const noteColumns = `id, owner, title, details, tags, created, favorited`

// Create inserts a new note row.
func (r *NoteRepo) Create(ctx context.Context, n *model.Note) error {
	const q = `INSERT INTO notes (id, owner, title, details, tags, created, favorited) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Pool.Exec(ctx, q, n.ID, n.Owner, n.Title, n.Details, n.Tags, n.Created, n.Favorited)
	return err
}

// Get selects a single note by (id, owner).
func (r *NoteRepo) Get(ctx context.Context, owner, id string) (*model.Note, error) {
	const q = `SELECT ` + noteColumns + ` FROM notes WHERE id=$1 AND owner=$2`
	row := r.db.Pool.QueryRow(ctx, q, id, owner)
	var n model.Note
	err := row.Scan(&n.ID, &n.Owner, &n.Title, &n.Details, &n.Tags, &n.Created, &n.Favorited)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// List returns the owner's notes, newest first. Blank tag and zero date
// disable their filters; a non-positive limit means no limit.
func (r *NoteRepo) List(ctx context.Context, owner string, query model.NoteQuery) ([]model.Note, error) {
	const q = `SELECT ` + noteColumns + ` FROM notes WHERE owner=$1 AND ($2 = '' OR $2 = ANY(tags)) AND ($3::timestamptz IS NULL OR (created >= $3 AND created < $3 + interval '1 day')) ORDER BY created DESC LIMIT $4 OFFSET $5`

	var day any
	if !query.Date.IsZero() {
		day = query.Date
	}
	var limit any
	if query.Limit > 0 {
		limit = query.Limit
	}

	rows, err := r.db.Pool.Query(ctx, q, owner, query.Tag, day, limit, query.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		var n model.Note
		if err = rows.Scan(&n.ID, &n.Owner, &n.Title, &n.Details, &n.Tags, &n.Created, &n.Favorited); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Update applies a partial update: blank title/details keep the stored
// values, tags always overwrite.
func (r *NoteRepo) Update(ctx context.Context, owner, id string, upd model.NoteUpdate) error {
	const q = `UPDATE notes SET title = CASE WHEN $3 <> '' THEN $3 ELSE title END, details = CASE WHEN $4 <> '' THEN $4 ELSE details END, tags = $5 WHERE id=$1 AND owner=$2`
	tags := upd.Tags
	if tags == nil {
		tags = []string{}
	}
	tag, err := r.db.Pool.Exec(ctx, q, id, owner, upd.Title, upd.Details, tags)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// SetFavorite sets the favorited flag; setting an already-set flag is a no-op
// that still succeeds.
func (r *NoteRepo) SetFavorite(ctx context.Context, owner, id string, favorited bool) error {
	const q = `UPDATE notes SET favorited = $3 WHERE id=$1 AND owner=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, owner, favorited)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes (id, owner); deleting an absent note succeeds.
func (r *NoteRepo) Delete(ctx context.Context, owner, id string) error {
	const q = `DELETE FROM notes WHERE id=$1 AND owner=$2`
	_, err := r.db.Pool.Exec(ctx, q, id, owner)
	return err
}
