package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tbolorunduro/firenotes/internal/errs"
	"github.com/tbolorunduro/firenotes/internal/model"
	"github.com/tbolorunduro/firenotes/internal/repository"
	"github.com/tbolorunduro/firenotes/internal/service"
	"github.com/tbolorunduro/firenotes/internal/token"
)

// In-memory stores standing in for Postgres in edge tests.

type memUsers struct {
	byEmail map[string]*model.User
}

var _ repository.UserStore = (*memUsers)(nil)

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	m.byEmail[u.Email] = &cpy
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (m *memUsers) UpdatePassword(_ context.Context, email, hashed string) error {
	u, ok := m.byEmail[email]
	if !ok {
		return errs.ErrNotFound
	}
	u.HashedPassword = hashed
	return nil
}

func (m *memUsers) UpdateProfile(_ context.Context, id string, upd model.ProfileUpdate) error {
	for _, u := range m.byEmail {
		if u.ID == id {
			if upd.FirstName != "" {
				u.FirstName = upd.FirstName
			}
			if upd.LastName != "" {
				u.LastName = upd.LastName
			}
			u.Archived = false
			return nil
		}
	}
	return errs.ErrNotFound
}

func (m *memUsers) Archive(_ context.Context, id string) error {
	for _, u := range m.byEmail {
		if u.ID == id {
			u.Archived = true
			return nil
		}
	}
	return errs.ErrNotFound
}

type memNotes struct {
	notes map[string]*model.Note
}

var _ repository.NoteStore = (*memNotes)(nil)

func (m *memNotes) Create(_ context.Context, n *model.Note) error {
	cpy := *n
	m.notes[n.ID] = &cpy
	return nil
}

func (m *memNotes) Get(_ context.Context, owner, id string) (*model.Note, error) {
	n, ok := m.notes[id]
	if !ok || n.Owner != owner {
		return nil, errs.ErrNotFound
	}
	c := *n
	return &c, nil
}

func (m *memNotes) List(_ context.Context, owner string, q model.NoteQuery) ([]model.Note, error) {
	out := []model.Note{}
	for _, n := range m.notes {
		if n.Owner != owner {
			continue
		}
		if q.Tag != "" {
			found := false
			for _, t := range n.Tags {
				if t == q.Tag {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, *n)
	}
	return out, nil
}

func (m *memNotes) Update(_ context.Context, owner, id string, upd model.NoteUpdate) error {
	n, ok := m.notes[id]
	if !ok || n.Owner != owner {
		return errs.ErrNotFound
	}
	if upd.Title != "" {
		n.Title = upd.Title
	}
	if upd.Details != "" {
		n.Details = upd.Details
	}
	if upd.Tags != nil {
		n.Tags = upd.Tags
	} else {
		n.Tags = []string{}
	}
	return nil
}

func (m *memNotes) SetFavorite(_ context.Context, owner, id string, favorited bool) error {
	n, ok := m.notes[id]
	if !ok || n.Owner != owner {
		return errs.ErrNotFound
	}
	n.Favorited = favorited
	return nil
}

func (m *memNotes) Delete(_ context.Context, owner, id string) error {
	n, ok := m.notes[id]
	if ok && n.Owner == owner {
		delete(m.notes, id)
	}
	return nil
}

type memSender struct {
	sendErr error
	sent    int
}

func (m *memSender) Send(context.Context, string, string, string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent++
	return nil
}

// testEnv bundles the wired server and its collaborators.
type testEnv struct {
	srv    *httptest.Server
	codec  *token.Codec
	sender *memSender
	users  *memUsers
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := &memUsers{byEmail: map[string]*model.User{}}
	notes := &memNotes{notes: map[string]*model.Note{}}
	sender := &memSender{}
	codec := token.New([]byte("test-secret"), 0, 0)
	log := zap.NewNop()

	app := New(
		service.NewAuthService(users, codec, sender, "https://notes.example.com", log),
		service.NewNoteService(notes),
		service.NewUserService(users),
		codec,
		log,
	)
	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)
	return &testEnv{srv: srv, codec: codec, sender: sender, users: users}
}

// do performs a request and returns status and raw body.
func (e *testEnv) do(t *testing.T, method, path, bearer, body string) (int, string) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

// signUp registers a user and returns the decoded auth view.
func (e *testEnv) signUp(t *testing.T, email, password string) service.AuthView {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/auth/signup", "",
		`{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, status, body)
	var view service.AuthView
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	return view
}
