package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/webquery"
)

// Ensure HealthChecker implements webquery.HealthChecker at compile time.
var _ webquery.HealthChecker = (*HealthChecker)(nil)

// HealthChecker probes a language model server with a single GET request.
// It never retries: the first failure is reported.
type HealthChecker struct {
	client *http.Client
}

// NewHealthChecker creates a HealthChecker whose probe gives up after timeout.
// A zero timeout uses DefaultFetchTimeout.
func NewHealthChecker(timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HealthChecker{client: &http.Client{Timeout: timeout}}
}

// Check returns nil if baseURL answers with 200 OK.
//
// Connection failures and error statuses both return EUNAVAILABLE but keep
// distinct messages so the user can tell a stopped server from a
// misbehaving one.
func (h *HealthChecker) Check(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return webquery.Wrap(webquery.EINVALID, err, "invalid base URL %q", baseURL)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return webquery.Wrap(webquery.EUNAVAILABLE, err, "could not connect to the Ollama server at %s", baseURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return webquery.Errorf(webquery.EUNAVAILABLE, "Ollama server at %s returned HTTP %d", baseURL, resp.StatusCode)
	}

	return nil
}
