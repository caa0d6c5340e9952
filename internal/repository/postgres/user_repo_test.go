package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/tbolorunduro/firenotes/internal/errs"
	"github.com/tbolorunduro/firenotes/internal/model"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func TestUserRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	u := &model.User{
		ID:             "aZ3xYw91Qp",
		Email:          "name@email.com",
		HashedPassword: "$2a$10$hash",
		CreatedAt:      time.Now(),
	}

	// OK
	mock.ExpectExec(`INSERT INTO users \(id, email, first_name, last_name, hashed_password, archived, created_at\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7\)`).
		WithArgs(u.ID, u.Email, u.FirstName, u.LastName, u.HashedPassword, u.Archived, u.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, u))

	// Unique violation on email
	mock.ExpectExec(`INSERT INTO users \(id, email, first_name, last_name, hashed_password, archived, created_at\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7\)`).
		WithArgs(u.ID, u.Email, u.FirstName, u.LastName, u.HashedPassword, u.Archived, u.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.Create(ctx, u)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestUserRepo_GetByEmail(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()

	cols := []string{"id", "email", "first_name", "last_name", "hashed_password", "archived", "created_at"}
	mock.ExpectQuery(`SELECT id, email, first_name, last_name, hashed_password, archived, created_at FROM users WHERE email=\$1`).
		WithArgs("name@email.com").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("aZ3xYw91Qp", "name@email.com", "Jane", "Doe", "$2a$10$hash", false, time.Now()))
	u, err := r.GetByEmail(ctx, "name@email.com")
	require.NoError(t, err)
	require.Equal(t, "aZ3xYw91Qp", u.ID)
	require.Equal(t, "Jane", u.FirstName)

	mock.ExpectQuery(`SELECT id, email, first_name, last_name, hashed_password, archived, created_at FROM users WHERE email=\$1`).
		WithArgs("missing@email.com").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByEmail(ctx, "missing@email.com")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserRepo_GetByID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()

	cols := []string{"id", "email", "first_name", "last_name", "hashed_password", "archived", "created_at"}
	mock.ExpectQuery(`SELECT id, email, first_name, last_name, hashed_password, archived, created_at FROM users WHERE id=\$1`).
		WithArgs("aZ3xYw91Qp").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("aZ3xYw91Qp", "name@email.com", "", "", "$2a$10$hash", true, time.Now()))
	u, err := r.GetByID(ctx, "aZ3xYw91Qp")
	require.NoError(t, err)
	require.True(t, u.Archived)
}

func TestUserRepo_UpdatePassword(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE users SET hashed_password=\$2 WHERE email=\$1`).
		WithArgs("name@email.com", "$2a$10$newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.UpdatePassword(ctx, "name@email.com", "$2a$10$newhash"))

	mock.ExpectExec(`UPDATE users SET hashed_password=\$2 WHERE email=\$1`).
		WithArgs("missing@email.com", "$2a$10$newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := r.UpdatePassword(ctx, "missing@email.com", "$2a$10$newhash")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserRepo_UpdateProfile(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE users SET first_name = CASE WHEN \$2 <> '' THEN \$2 ELSE first_name END, last_name = CASE WHEN \$3 <> '' THEN \$3 ELSE last_name END, archived = false WHERE id=\$1`).
		WithArgs("aZ3xYw91Qp", "Jane", "").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.UpdateProfile(ctx, "aZ3xYw91Qp", model.ProfileUpdate{FirstName: "Jane"}))
}

func TestUserRepo_Archive(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE users SET archived = true WHERE id=\$1`).
		WithArgs("aZ3xYw91Qp").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.Archive(ctx, "aZ3xYw91Qp"))
}
