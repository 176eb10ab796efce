// Package slog provides log/slog decorators for the network-facing
// webquery interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webquery"
)

// Ensure service implements interface.
var (
	_ webquery.Fetcher       = (*LoggingFetcher)(nil)
	_ webquery.HealthChecker = (*LoggingHealthChecker)(nil)
)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   webquery.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webquery.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the page size.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingHealthChecker wraps a HealthChecker with logging.
type LoggingHealthChecker struct {
	next   webquery.HealthChecker
	logger *slog.Logger
}

// NewLoggingHealthChecker creates a new LoggingHealthChecker.
func NewLoggingHealthChecker(next webquery.HealthChecker, logger *slog.Logger) *LoggingHealthChecker {
	return &LoggingHealthChecker{next: next, logger: logger}
}

// Check delegates to the wrapped checker.
func (c *LoggingHealthChecker) Check(ctx context.Context, baseURL string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("health check",
			"url", baseURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Check(ctx, baseURL)
}
