// Package email provides outbound email delivery and the message bodies the
// auth flows send.
package email

import "context"

// Sender delivers a single plain-text email. Implementations must not retry;
// callers decide whether a failed send is surfaced or just logged.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
