// Package http provides an HTTP-based implementation of gpa.Fetcher for
// storefronts that serve complete HTML without JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements gpa.Fetcher at compile time.
var _ gpa.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static storefronts only. Sessions opened from it cannot activate
// pagination controls, so URL collection is limited to a single page.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", gpa.Errorf(gpa.ENOTFOUND, "HTTP 404 for %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", gpa.Errorf(gpa.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Open fetches the URL once and returns a static session over the
// response body.
func (f *Fetcher) Open(ctx context.Context, url string) (gpa.PageSession, error) {
	html, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return &session{url: url, html: html}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

var _ gpa.PageSession = (*session)(nil)

// session is a static snapshot of one HTTP response. It has no live page
// to drive, so Activate always fails and collection treats the snapshot
// as the only page.
type session struct {
	url  string
	html string
}

func (s *session) HTML(ctx context.Context) (string, error) {
	return s.html, nil
}

func (s *session) URL() string {
	return s.url
}

func (s *session) Activate(ctx context.Context, selector string) error {
	return gpa.Errorf(gpa.EUNAVAILABLE, "static session cannot activate %q", selector)
}

func (s *session) Close() error {
	return nil
}
