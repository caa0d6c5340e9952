package email

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Mailgun sends messages through the Mailgun HTTP API.
type Mailgun struct {
	baseURI string // e.g. https://api.mailgun.net/v3/<domain>
	apiKey  string
	from    string
	client  *http.Client
}

// NewMailgun constructs a Mailgun sender.
func NewMailgun(baseURI, apiKey, from string) *Mailgun {
	return &Mailgun{
		baseURI: strings.TrimRight(baseURI, "/"),
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts a form-encoded message to the Mailgun messages endpoint.
func (m *Mailgun) Send(ctx context.Context, recipient, subject, body string) error {
	form := url.Values{
		"from":    {m.from},
		"to":      {recipient},
		"subject": {subject},
		"text":    {body},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURI+"/messages", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mailgun: unexpected status %d", resp.StatusCode)
	}
	return nil
}
