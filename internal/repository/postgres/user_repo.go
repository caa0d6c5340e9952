package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tbolorunduro/firenotes/internal/errs"
	"github.com/tbolorunduro/firenotes/internal/model"
)

// UserRepo implements repository.UserStore using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, email, first_name, last_name, hashed_password, archived, created_at`

// Create inserts a new user row.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (id, email, first_name, last_name, hashed_password, archived, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.Email, u.FirstName, u.LastName, u.HashedPassword, u.Archived, u.CreatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// GetByID selects a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByEmail selects a user by exact email match.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, email))
}

// UpdatePassword replaces the stored hash for the given email.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, hashedPassword string) error {
	const q = `UPDATE users SET hashed_password=$2 WHERE email=$1`
	tag, err := r.db.Pool.Exec(ctx, q, email, hashedPassword)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// UpdateProfile overwrites non-blank name fields and clears the archived flag.
func (r *UserRepo) UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) error {
	const q = `UPDATE users SET first_name = CASE WHEN $2 <> '' THEN $2 ELSE first_name END, last_name = CASE WHEN $3 <> '' THEN $3 ELSE last_name END, archived = false WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, upd.FirstName, upd.LastName)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Archive sets the archived flag.
func (r *UserRepo) Archive(ctx context.Context, id string) error {
	const q = `UPDATE users SET archived = true WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *UserRepo) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.HashedPassword, &u.Archived, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
