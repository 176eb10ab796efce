// Package rod implements webquery.Fetcher with a headless Chrome browser for
// pages that build their content with JavaScript.
package rod

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/webquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation and rendering of one page.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements webquery.Fetcher at compile time.
var _ webquery.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration

	mu     sync.Mutex
	closed bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each Fetch call. Non-positive values are ignored.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// NewFetcher launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns EFETCH if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, webquery.Wrap(webquery.EFETCH, err, "launching browser")
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, webquery.Wrap(webquery.EFETCH, err, "connecting to browser")
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to url, waits for the page to load and returns the
// rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	closed := f.closed
	f.mu.Unlock()
	if closed {
		return "", webquery.Errorf(webquery.EINVALID, "fetcher is closed")
	}

	if err := ctx.Err(); err != nil {
		return "", webquery.Wrap(webquery.EFETCH, err, "fetch %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", webquery.Wrap(webquery.EFETCH, err, "open page")
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", webquery.Wrap(webquery.EFETCH, err, "navigate to %s", url)
	}
	if err := page.WaitLoad(); err != nil {
		return "", webquery.Wrap(webquery.EFETCH, err, "load %s", url)
	}

	html, err := page.HTML()
	if err != nil {
		return "", webquery.Wrap(webquery.EFETCH, err, "read %s", url)
	}
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.launcher.PID()
}
