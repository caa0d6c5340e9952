package email

import (
	"bytes"
	"net/url"
	"text/template"
)

// Subjects used by the auth flows.
const (
	WelcomeSubject           = "Welcome to Firenotes"
	ForgotPasswordSubject    = "Reset your Firenotes password"
	PasswordConfirmedSubject = "Your Firenotes password was changed"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(
	`Hello{{if .FirstName}} {{.FirstName}}{{end}},

Welcome to Firenotes! Your account is ready: sign in with {{.Email}} and start
taking notes.

The Firenotes team
`))

var forgotPasswordTmpl = template.Must(template.New("forgot").Parse(
	`Hello,

We received a request to reset the password for {{.Email}}. Follow the link
below to choose a new one:

{{.ResetLink}}

The link expires in 12 hours. If you didn't ask for a reset you can safely
ignore this email.

The Firenotes team
`))

var passwordConfirmedTmpl = template.Must(template.New("confirmed").Parse(
	`Hello,

The password for {{.Email}} has been updated. If this wasn't you, please reset
your password immediately.

The Firenotes team
`))

// WelcomeBody renders the signup welcome message.
func WelcomeBody(email, firstName string) string {
	return render(welcomeTmpl, map[string]string{"Email": email, "FirstName": firstName})
}

// ForgotPasswordBody renders the reset-link message. The token travels as a
// query parameter on the front-end reset page.
func ForgotPasswordBody(frontEndURL, email, token string) string {
	link := frontEndURL + "/reset-password?token=" + url.QueryEscape(token)
	return render(forgotPasswordTmpl, map[string]string{"Email": email, "ResetLink": link})
}

// PasswordConfirmedBody renders the reset confirmation message.
func PasswordConfirmedBody(email string) string {
	return render(passwordConfirmedTmpl, map[string]string{"Email": email})
}

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	// Templates are static and data is flat strings; execution cannot fail.
	_ = t.Execute(&buf, data)
	return buf.String()
}
