// Package ollama implements webquery.Generator and webquery.Embedder on top
// of the Ollama API client.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/webquery"
	"github.com/ollama/ollama/api"
)

// DefaultBaseURL is the address of a local Ollama server.
const DefaultBaseURL = "http://localhost:11434"

// DefaultTimeout bounds a single generation or embedding request.
const DefaultTimeout = 5 * time.Minute

// Client holds a connection to one Ollama server.
type Client struct {
	api     *api.Client
	baseURL string
}

// NewClient creates a client for the server at baseURL. Requests are bounded
// by timeout; zero uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, webquery.Errorf(webquery.EINVALID, "invalid Ollama base URL %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		api:     api.NewClient(u, &http.Client{Timeout: timeout}),
		baseURL: u.String(),
	}, nil
}

// BaseURL returns the normalized server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// describe turns a client error into a readable message.
func describe(ctx context.Context, err error) string {
	var se api.StatusError
	switch {
	case errors.As(err, &se):
		msg := se.ErrorMessage
		if msg == "" {
			msg = se.Status
		}
		return fmt.Sprintf("Ollama returned HTTP %d: %s", se.StatusCode, msg)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "request timed out"
	default:
		return err.Error()
	}
}
