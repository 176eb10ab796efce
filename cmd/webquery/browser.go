package main

import (
	"context"
	"os"
	"time"

	"github.com/fwojciec/webquery"
	"github.com/fwojciec/webquery/rod"
)

// browserFetcher launches headless Chrome on first use, so nothing starts
// before the model endpoint has been checked.
type browserFetcher struct {
	timeout time.Duration
	fetcher *rod.Fetcher
}

var _ webquery.Fetcher = (*browserFetcher)(nil)

func (b *browserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if b.fetcher == nil {
		err := silence(func() error {
			f, err := rod.NewFetcher(rod.WithFetchTimeout(b.timeout))
			b.fetcher = f
			return err
		})
		if err != nil {
			return "", webquery.Wrap(webquery.EFETCH, err, "start browser (is Chrome or Chromium installed?)")
		}
	}
	return b.fetcher.Fetch(ctx, url)
}

func (b *browserFetcher) Close() error {
	if b.fetcher == nil {
		return nil
	}
	return b.fetcher.Close()
}

// silence runs fn with the process stdout and stderr pointed at the null
// device and restores them when fn returns.
func silence(fn func() error) error {
	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return fn()
	}
	defer null.Close()

	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = null, null
	defer func() {
		os.Stdout, os.Stderr = stdout, stderr
	}()

	return fn()
}
