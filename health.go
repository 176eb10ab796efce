package webquery

import "context"

// HealthChecker probes the language model endpoint before any work starts.
type HealthChecker interface {
	// Check returns nil if the endpoint at baseURL is reachable and
	// answers with a success status. Returns EUNAVAILABLE otherwise.
	Check(ctx context.Context, baseURL string) error
}
