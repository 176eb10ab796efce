package mock

import (
	"context"

	"github.com/fwojciec/webquery"
)

var (
	_ webquery.Fetcher       = (*Fetcher)(nil)
	_ webquery.HealthChecker = (*HealthChecker)(nil)
)

// Fetcher is a mock implementation of webquery.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// HealthChecker is a mock implementation of webquery.HealthChecker.
type HealthChecker struct {
	CheckFn func(ctx context.Context, baseURL string) error
}

func (h *HealthChecker) Check(ctx context.Context, baseURL string) error {
	return h.CheckFn(ctx, baseURL)
}
