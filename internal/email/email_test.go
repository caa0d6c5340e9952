package email

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMailgunSend(t *testing.T) {
	t.Parallel()
	var got struct {
		path, auth, from, to, subject, text string
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got.path = r.URL.Path
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		got.auth = user + ":" + pass
		got.from = r.PostFormValue("from")
		got.to = r.PostFormValue("to")
		got.subject = r.PostFormValue("subject")
		got.text = r.PostFormValue("text")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewMailgun(srv.URL, "key-xxxx", "noreply@example.com")
	err := m.Send(context.Background(), "name@email.com", "Subject", "Body")
	require.NoError(t, err)
	require.Equal(t, "/messages", got.path)
	require.Equal(t, "api:key-xxxx", got.auth)
	require.Equal(t, "noreply@example.com", got.from)
	require.Equal(t, "name@email.com", got.to)
	require.Equal(t, "Subject", got.subject)
	require.Equal(t, "Body", got.text)
}

func TestMailgunSendFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewMailgun(srv.URL, "bad-key", "noreply@example.com")
	err := m.Send(context.Background(), "name@email.com", "Subject", "Body")
	require.Error(t, err)
}

func TestForgotPasswordBody(t *testing.T) {
	t.Parallel()
	body := ForgotPasswordBody("https://notes.example.com", "name@email.com", "a.b+c")
	require.Contains(t, body, "name@email.com")
	require.Contains(t, body, "https://notes.example.com/reset-password?token=a.b%2Bc")
}

func TestWelcomeBody(t *testing.T) {
	t.Parallel()
	require.Contains(t, WelcomeBody("name@email.com", "Jane"), "Hello Jane,")
	require.True(t, strings.HasPrefix(WelcomeBody("name@email.com", ""), "Hello,"))
}
